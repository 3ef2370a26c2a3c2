package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/world"
)

// frameMsg carries a snapshot from the engine into the Bubble Tea loop.
type frameMsg world.Snapshot

// Model is the Bubble Tea model that displays frames and forwards keys.
// It never advances the game; the engine does that on its own goroutine.
type Model struct {
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	actions chan<- core.Action
	dropped int // Keys dropped because the engine fell behind
}

// NewModel creates a model that renders into a width x height buffer and
// publishes actions on the given channel.
func NewModel(width, height int, actions chan<- core.Action) Model {
	return Model{
		screen:  core.NewScreen(width, height),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		actions: actions,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		return m.handleFrame(world.Snapshot(msg))
	}

	return m, nil
}

// handleKey forwards mapped keys to the engine without blocking.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.MapKey(msg)
	if a == core.ActionNone {
		return m, nil
	}

	select {
	case m.actions <- a:
	default:
		m.dropped++
	}
	return m, nil
}

// handleFrame redraws the screen buffer from a snapshot.
func (m Model) handleFrame(snap world.Snapshot) (tea.Model, tea.Cmd) {
	w, h := snap.ScreenSize()
	if m.screen.Width() != w || m.screen.Height() != h {
		m.screen = core.NewScreen(w, h)
	}
	snap.Render(m.screen)
	return m, nil
}

// saveScreenshot writes the current screen to ~/.chase/screenshots.
func (m Model) saveScreenshot() (string, error) {
	dir := filepath.Join(os.Getenv("HOME"), ".chase", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("chase_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the last frame plus a help footer.
func (m Model) View() string {
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
