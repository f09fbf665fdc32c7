package core

// Action is a semantic input abstracted from physical keys and mouse buttons.
type Action int

const (
	ActionNone        Action = iota
	ActionStart              // Start button activation (click, Space, Enter)
	ActionPointerDown        // Any pointer press (click, Space, Enter)
	ActionRestart            // R - new session after the game ended
	ActionQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPointerDown:
		return "PointerDown"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
type InputFrame struct {
	// Actions triggered during this frame.
	Actions map[Action]bool

	// PointerX is the pointer's horizontal position in screen cells.
	// Zero means no pointer reading has happened yet.
	PointerX float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
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

// MovePointer shifts the pointer by dx cells, keeping it inside [1, width].
func (f *InputFrame) MovePointer(dx float64, width int) {
	x := f.PointerX
	if x <= 0 {
		x = float64(width) / 2
	}
	f.PointerX = ClampF(x+dx, 1, float64(max(width, 1)))
}

// Clear resets the actions for the next frame. The pointer position persists
// because it is a reading, not an event.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerX = f.PointerX
	return clone
}
