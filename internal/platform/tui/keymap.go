package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Reset      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Confirm, k.Reset},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
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
		Confirm: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "start/continue"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new round"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions translates a key message to game actions.
// Confirm answers every "press space" prompt, so it sets all the mode
// intents and the game picks the one its current mode accepts.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Confirm):
		return []core.Action{core.ActionStart, core.ActionContinue, core.ActionReset}
	case key.Matches(msg, k.Reset):
		return []core.Action{core.ActionReset}
	}
	return nil
}

// Hold emulates held movement keys. Terminals only report presses and
// auto-repeats, so a direction counts as held for a short window after
// its most recent report.
type Hold struct {
	window      time.Duration
	left, right time.Time
}

// NewHold creates a hold tracker with the given window.
func NewHold(window time.Duration) Hold {
	return Hold{window: window}
}

// Press records a movement key at time at. A press in one direction
// releases the other.
func (h *Hold) Press(a core.Action, at time.Time) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = at, time.Time{}
	case core.ActionRight:
		h.right, h.left = at, time.Time{}
	}
}

// Apply sets the movement intents that are still held at time now.
func (h Hold) Apply(frame *core.InputFrame, now time.Time) {
	if h.held(h.left, now) {
		frame.Set(core.ActionLeft)
	}
	if h.held(h.right, now) {
		frame.Set(core.ActionRight)
	}
}

func (h Hold) held(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) <= h.window
}
