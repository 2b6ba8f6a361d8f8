// Package core provides fundamental types and utilities shared by the engine
// and the front-ends. It has no external dependencies (especially no Bubble Tea
// or Ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w x h rectangle centered inside r.
// The result is clamped so it never starts above or left of r.
func (r Rect) Centered(w, h int) Rect {
	x := Max(r.X, r.X+(r.W-w)/2)
	y := Max(r.Y, r.Y+(r.H-h)/2)
	return NewRect(x, y, w, h)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
