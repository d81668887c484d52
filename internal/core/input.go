package core

// Action represents a semantic platform action, abstracted from physical key presses.
// Per-player movement and attacks are read from the held KeySet instead.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionLeft           // A, Left arrow - menu option cycling
	ActionRight          // D, Right arrow - menu option cycling
	ActionConfirm        // Enter, Space - start game from the title screen
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Key is a logical key identifier, independent of the platform that produced it.
type Key string

// Logical keys used by the default two-player bindings.
const (
	KeyW          Key = "KeyW"
	KeyA          Key = "KeyA"
	KeyS          Key = "KeyS"
	KeyD          Key = "KeyD"
	KeySpace      Key = "Space"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyEnter      Key = "Enter"
)

// KeySet is a snapshot of which logical keys are currently held down.
type KeySet map[Key]bool

// Pressed reports whether k is held. A nil set has no keys held.
func (ks KeySet) Pressed(k Key) bool {
	return ks[k]
}

// InputFrame represents the input state for a single simulation tick.
// Actions are one-shot platform intents; Keys is the held-key snapshot.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Keys holds every logical key considered down during this frame.
	Keys KeySet
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Keys:    make(KeySet),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks a logical key as held for this frame.
func (f *InputFrame) Hold(k Key) {
	if f.Keys == nil {
		f.Keys = make(KeySet)
	}
	f.Keys[k] = true
}

// Clear resets all actions and held keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Keys {
		delete(f.Keys, k)
	}
}
