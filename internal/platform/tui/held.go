package tui

import "github.com/vovakirdan/tui-brawler/internal/core"

// DefaultHoldTicks is how long a key stays down after its last press.
// Terminals never report key release, so held state is inferred from
// the press and auto-repeat stream.
const DefaultHoldTicks = 12

// heldKeys tracks the remaining hold time of each logical key.
type heldKeys struct {
	left map[core.Key]int
	hold int
}

func newHeldKeys(hold int) heldKeys {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return heldKeys{left: make(map[core.Key]int), hold: hold}
}

// press marks k as down for the full hold window.
func (h heldKeys) press(k core.Key) {
	h.left[k] = h.hold
}

// apply copies every key still down into the frame and ages the window by one tick.
func (h heldKeys) apply(frame *core.InputFrame) {
	for k, n := range h.left {
		frame.Hold(k)
		if n <= 1 {
			delete(h.left, k)
		} else {
			h.left[k] = n - 1
		}
	}
}

// reset releases every key.
func (h heldKeys) reset() {
	for k := range h.left {
		delete(h.left, k)
	}
}
