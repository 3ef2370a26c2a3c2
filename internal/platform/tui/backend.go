// Package tui provides the Bubble Tea backend. The Bubble Tea program runs on
// its own goroutine; the engine reaches it only through Poll and Render.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/world"
)

// actionBuffer is how many keys may queue between two polls.
const actionBuffer = 64

func init() {
	registry.Register("tea", "Bubble Tea (alt screen)", func(cfg core.RuntimeConfig) (registry.Backend, error) {
		return New(cfg), nil
	})
}

// Backend runs a Bubble Tea program that shows engine frames.
type Backend struct {
	program *tea.Program
	actions chan core.Action
	done    chan struct{}
	err     error

	started  bool
	doneSeen bool
}

// New creates a backend for a cfg.ScreenW x cfg.ScreenH frame.
func New(cfg core.RuntimeConfig, opts ...tea.ProgramOption) *Backend {
	actions := make(chan core.Action, actionBuffer)
	model := NewModel(cfg.ScreenW, cfg.ScreenH, actions)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return &Backend{
		program: tea.NewProgram(model, opts...),
		actions: actions,
		done:    make(chan struct{}),
	}
}

// Start runs the Bubble Tea program in the background.
func (b *Backend) Start() error {
	if b.started {
		return fmt.Errorf("tui: already started")
	}
	b.started = true

	go func() {
		defer close(b.done)
		if _, err := b.program.Run(); err != nil {
			b.err = err
		}
	}()
	return nil
}

// Poll waits up to timeout for a key. When the program exits on its own the
// first Poll afterwards reports ActionQuit.
func (b *Backend) Poll(ctx context.Context, timeout time.Duration) (core.Action, bool, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	done := b.done
	if b.doneSeen {
		done = nil
	}

	select {
	case a := <-b.actions:
		return a, true, nil
	case <-t.C:
		return core.ActionNone, false, nil
	case <-ctx.Done():
		return core.ActionNone, false, nil
	case <-done:
		b.doneSeen = true
		if b.err != nil {
			return core.ActionNone, false, fmt.Errorf("tui: program exited: %w", b.err)
		}
		return core.ActionQuit, true, nil
	}
}

// Render hands the snapshot to the Bubble Tea loop.
func (b *Backend) Render(snap world.Snapshot) error {
	b.program.Send(frameMsg(snap))
	return nil
}

// Close stops the program and restores the terminal.
func (b *Backend) Close() error {
	if !b.started {
		return nil
	}
	b.program.Quit()
	<-b.done
	return b.err
}
