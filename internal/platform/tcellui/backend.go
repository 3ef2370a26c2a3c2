// Package tcellui provides a backend that draws straight to the terminal with
// tcell. A goroutine pumps PollEvent into a channel that Poll drains.
package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/world"
)

const eventBuffer = 100

func init() {
	registry.Register("tcell", "tcell (direct terminal)", func(core.RuntimeConfig) (registry.Backend, error) {
		return New()
	})
}

// Backend draws frames with tcell and reads keys from its event queue.
type Backend struct {
	screen  tcell.Screen
	events  chan tcell.Event
	buf     *core.Screen
	started bool
}

// New creates a backend on the real terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellui: new screen: %w", err)
	}
	return newWithScreen(screen), nil
}

func newWithScreen(screen tcell.Screen) *Backend {
	return &Backend{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		buf:    core.NewScreen(0, 0),
	}
}

// Start initializes the screen and starts the event pump.
func (b *Backend) Start() error {
	if b.started {
		return fmt.Errorf("tcellui: already started")
	}
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("tcellui: init screen: %w", err)
	}
	b.started = true
	b.screen.HideCursor()
	b.screen.Clear()

	go pump(b.screen, b.events)
	return nil
}

// pump forwards terminal events until the screen is finalized.
func pump(screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		default:
			// Drop when the engine is not keeping up
		}
	}
}

// Poll waits up to timeout for the next mapped key. Resizes and unbound keys
// end the wait early without an action.
func (b *Backend) Poll(ctx context.Context, timeout time.Duration) (core.Action, bool, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case ev, open := <-b.events:
		if !open {
			// Screen is gone; report quit once, then behave like an idle input.
			b.events = nil
			return core.ActionQuit, true, nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if a := mapKey(ev); a != core.ActionNone {
				return a, true, nil
			}
		case *tcell.EventResize:
			b.screen.Sync()
		}
		return core.ActionNone, false, nil
	case <-t.C:
		return core.ActionNone, false, nil
	case <-ctx.Done():
		return core.ActionNone, false, nil
	}
}

// mapKey translates a tcell key event to a game action.
func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionTurnLeft
	case tcell.KeyRight:
		return core.ActionTurnRight
	case tcell.KeyUp:
		return core.ActionAccelerate
	case tcell.KeyDown:
		return core.ActionDecelerate
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		return core.ActionForKey(string(ev.Rune()))
	}
	return core.ActionNone
}

// Render draws the snapshot and flushes it to the terminal.
func (b *Backend) Render(snap world.Snapshot) error {
	w, h := snap.ScreenSize()
	if b.buf.Width() != w || b.buf.Height() != h {
		b.buf = core.NewScreen(w, h)
	}
	snap.Render(b.buf)

	b.screen.Clear()
	for y := range h {
		for x := range w {
			cell := b.buf.GetCell(x, y)
			if cell.Rune == 0 {
				continue
			}
			b.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	b.screen.Show()
	return nil
}

func styleFor(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}

// Close restores the terminal.
func (b *Backend) Close() error {
	if !b.started {
		return nil
	}
	b.started = false
	b.screen.Fini()
	return nil
}
