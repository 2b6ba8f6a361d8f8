package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)

	inner := outer.Centered(10, 4)
	if inner.X != 5 || inner.Y != 3 {
		t.Errorf("Centered(10, 4) at (%d, %d), expected (5, 3)", inner.X, inner.Y)
	}

	// Larger than outer clamps to the corner
	big := outer.Centered(30, 20)
	if big.X != 0 || big.Y != 0 {
		t.Errorf("Centered(30, 20) at (%d, %d), expected (0, 0)", big.X, big.Y)
	}
}
