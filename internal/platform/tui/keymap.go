package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// KeyMap holds the game's key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Settings   key.Binding
	Back       key.Binding
	Music      key.Binding
	Effects    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "back"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music"),
		),
		Effects: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "effects"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pause, k.Restart},
		{k.Confirm, k.Settings, k.Music, k.Effects},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys and for the screenshot key.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Settings):
		return core.ActionSettings
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Music):
		return core.ActionToggleMusic
	case key.Matches(msg, k.Effects):
		return core.ActionToggleEffects
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// holdTracker turns key presses into held movement.
// Terminals report presses (and auto-repeats) but never releases, so a
// direction stays held for a short window after each press. A repeat
// arriving inside the window keeps it held.
type holdTracker struct {
	first  int // Ticks held after a fresh press; covers the auto-repeat delay
	repeat int // Ticks held after a repeat
	left   int
	right  int
}

func newHoldTracker(tickRate int) holdTracker {
	return holdTracker{
		first:  max(1, tickRate/4),
		repeat: max(1, tickRate/8),
	}
}

// Press records a movement key. Pressing one direction releases the other.
func (h *holdTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.window(h.left)
		h.right = 0
	case core.ActionRight:
		h.right = h.window(h.right)
		h.left = 0
	}
}

func (h *holdTracker) window(current int) int {
	if current > 0 {
		return max(current, h.repeat)
	}
	return h.first
}

// Apply sets the held directions on f and counts the window down.
func (h *holdTracker) Apply(f *core.InputFrame) {
	if h.left > 0 {
		f.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		f.Set(core.ActionRight)
		h.right--
	}
}

// Reset releases both directions.
func (h *holdTracker) Reset() {
	h.left, h.right = 0, 0
}
