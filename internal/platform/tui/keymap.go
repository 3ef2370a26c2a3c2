package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	TurnLeft   key.Binding
	TurnRight  key.Binding
	Accelerate key.Binding
	Decelerate key.Binding
	NoClip     key.Binding
	SpeedLimit key.Binding
	Invincible key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard chase bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TurnLeft:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "turn")),
		TurnRight:  key.NewBinding(key.WithKeys("right")),
		Accelerate: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "speed")),
		Decelerate: key.NewBinding(key.WithKeys("down")),
		NoClip:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no-clip")),
		SpeedLimit: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "speed limit")),
		Invincible: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "invincible")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MapKey returns the action bound to msg, or ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.TurnLeft):
		return core.ActionTurnLeft
	case key.Matches(msg, k.TurnRight):
		return core.ActionTurnRight
	case key.Matches(msg, k.Accelerate):
		return core.ActionAccelerate
	case key.Matches(msg, k.Decelerate):
		return core.ActionDecelerate
	case key.Matches(msg, k.NoClip):
		return core.ActionToggleNoClip
	case key.Matches(msg, k.SpeedLimit):
		return core.ActionToggleSpeedLimit
	case key.Matches(msg, k.Invincible):
		return core.ActionToggleInvincibility
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TurnLeft, k.Accelerate, k.NoClip, k.SpeedLimit, k.Invincible, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TurnLeft, k.Accelerate},
		{k.NoClip, k.SpeedLimit, k.Invincible},
		{k.Screenshot, k.Quit},
	}
}
