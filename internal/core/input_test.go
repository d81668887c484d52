package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set(ActionPause) should be visible through Has")
	}

	var zero InputFrame
	if zero.Has(ActionConfirm) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionConfirm)
	if !zero.Has(ActionConfirm) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameKeys(t *testing.T) {
	f := NewInputFrame()
	f.Hold(KeyW)
	f.Hold(KeyEnter)

	if !f.Keys.Pressed(KeyW) || !f.Keys.Pressed(KeyEnter) {
		t.Error("held keys should be pressed")
	}
	if f.Keys.Pressed(KeyArrowUp) {
		t.Error("unheld key should not be pressed")
	}

	var nilSet KeySet
	if nilSet.Pressed(KeySpace) {
		t.Error("nil KeySet should have nothing pressed")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.Hold(KeySpace)
	f.Clear()

	if f.Has(ActionRestart) || f.Keys.Pressed(KeySpace) {
		t.Error("Clear should remove actions and keys")
	}

	// The maps are reused across ticks.
	f.Hold(KeyD)
	if !f.Keys.Pressed(KeyD) {
		t.Error("frame should accept keys after Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionConfirm, "Confirm"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
