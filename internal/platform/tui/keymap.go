package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
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
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "respawn"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ActionFor maps a key string to a game action.
func (k KeyMap) ActionFor(keyStr string) core.Action {
	for _, pair := range []struct {
		b key.Binding
		a core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Fire, core.ActionFire},
		{k.Restart, core.ActionRestart},
		{k.Quit, core.ActionQuit},
	} {
		for _, s := range pair.b.Keys() {
			if s == keyStr {
				return pair.a
			}
		}
	}
	return core.ActionNone
}

// HoldTracker turns key press events into held state.
//
// Terminals deliver a press and then auto-repeats while a key is down, but
// never a release. An action therefore counts as held for a window of ticks
// after its most recent press or repeat.
type HoldTracker struct {
	window uint64
	tick   uint64
	seen   map[core.Action]uint64
}

// NewHoldTracker creates a tracker with the given hold window in ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window: uint64(window),
		seen:   make(map[core.Action]uint64),
	}
}

// Press records a press or repeat of an action at the current tick.
// Steering one way releases the other, since a terminal cannot report both
// arrows held together.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft:
		delete(h.seen, core.ActionRight)
	case core.ActionRight:
		delete(h.seen, core.ActionLeft)
	}
	h.seen[a] = h.tick
}

// Frame returns the actions held at the current tick.
func (h *HoldTracker) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.seen {
		if h.tick-at < h.window {
			frame.Set(a)
		}
	}
	return frame
}

// Advance moves to the next tick and forgets expired actions.
func (h *HoldTracker) Advance() {
	h.tick++
	for a, at := range h.seen {
		if h.tick-at >= h.window {
			delete(h.seen, a)
		}
	}
}
