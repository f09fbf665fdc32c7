package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// pointerStep is how far one arrow key press moves the pointer, in cells.
const pointerStep = 2

// KeyMap holds the game key bindings. The mouse is the primary control;
// the keyboard steers the same pointer for terminals without mouse support.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Launch, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("click/space", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ApplyKey updates an input frame from a key message. width is the screen
// width used to clamp keyboard pointer movement. Returns true for a quit
// request.
func (k KeyMap) ApplyKey(msg tea.KeyMsg, frame *core.InputFrame, width int) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Left):
		frame.MovePointer(-pointerStep, width)
	case key.Matches(msg, k.Right):
		frame.MovePointer(pointerStep, width)
	case key.Matches(msg, k.Launch):
		press(frame)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	}
	return false
}

// ApplyMouse updates an input frame from a mouse message. Motion moves the
// pointer; a left press also counts as a click.
func ApplyMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	// Cell centre, so column 0 is still a valid (positive) reading.
	frame.PointerX = float64(msg.X) + 0.5

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		press(frame)
	}
}

// press is a click: it activates the start button and resumes after a lost
// life. The game applies whichever one its phase accepts.
func press(frame *core.InputFrame) {
	frame.Set(core.ActionStart)
	frame.Set(core.ActionPointerDown)
}
