package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be true after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}

	// ActionNone is never recorded
	f.Set(ActionNone)
	if f.Has(ActionNone) {
		t.Error("ActionNone should not be recorded")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionStart) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionStart)
	if !f.Has(ActionStart) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(ActionStart, ActionUp)
	if !f.Has(ActionStart) || !f.Has(ActionUp) {
		t.Errorf("FrameOf should set all actions, got %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionStart, "Start"},
		{ActionHelp, "Help"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("bright_yellow")
	if !ok || c != ColorBrightYellow {
		t.Errorf("ParseColor(bright_yellow) = %d, %v", c, ok)
	}
	if _, ok := ParseColor("mauve"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
