package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/world"
)

// Options configures a Driver.
type Options struct {
	// Interval overrides the game's tick interval when positive.
	Interval  time.Duration
	Logger    *log.Logger
	Listeners []Listener
}

// Driver ties input polling, simulation and rendering together.
type Driver struct {
	game      *world.Game
	input     Input
	out       Renderer
	interval  time.Duration
	logger    *log.Logger
	listeners []Listener
	quit      bool
}

// New creates a driver for an initialized game.
func New(game *world.Game, in Input, out Renderer, opts Options) *Driver {
	interval := opts.Interval
	if interval <= 0 {
		interval = game.TickInterval()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:      game,
		input:     in,
		out:       out,
		interval:  interval,
		logger:    logger,
		listeners: opts.Listeners,
	}
}

// Run loops until the player dies, quit is requested or ctx is cancelled.
// Quit is honored only at the top of an iteration, so the tick in which it
// was pressed still steps and renders.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	for {
		if !d.game.Player().IsAlive() {
			return d.finish(OutcomeLost), nil
		}
		if d.quit || ctx.Err() != nil {
			return d.finish(OutcomeQuit), nil
		}

		if err := d.drainInput(ctx); err != nil {
			if ctx.Err() != nil {
				return d.finish(OutcomeQuit), nil
			}
			return d.result(OutcomeQuit), err
		}
		if ctx.Err() != nil {
			return d.finish(OutcomeQuit), nil
		}

		res := d.game.Step()
		d.report(res)

		if err := d.out.Render(d.game.Snapshot()); err != nil {
			return d.result(OutcomeQuit), fmt.Errorf("engine: render tick %d: %w", res.Tick, err)
		}
	}
}

// drainInput polls for the rest of the tick, applying actions as they come.
func (d *Driver) drainInput(ctx context.Context) error {
	start := time.Now()
	for {
		remaining := d.interval - time.Since(start)
		if remaining <= 0 {
			return nil
		}

		a, ok, err := d.input.Poll(ctx, remaining)
		if err != nil {
			return fmt.Errorf("engine: poll input: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
		if !ok {
			continue
		}

		if a == core.ActionQuit {
			d.quit = true
			continue
		}
		d.game.Apply(a)
		d.logger.Debug("action", "action", a)
	}
}

func (d *Driver) report(res world.StepResult) {
	if res.Picked {
		d.logger.Debug("pickup", "tick", res.Tick, "score", res.Score)
	}
	if res.Hits > 0 {
		d.logger.Debug("hit", "tick", res.Tick, "hits", res.Hits, "health", res.Health)
	}
	for _, l := range d.listeners {
		l.OnStep(res)
	}
}

func (d *Driver) result(o Outcome) Result {
	return Result{Outcome: o, Score: d.game.Score(), Ticks: d.game.Tick()}
}

func (d *Driver) finish(o Outcome) Result {
	r := d.result(o)
	d.logger.Info("game over", "outcome", o, "score", r.Score, "ticks", r.Ticks)
	return r
}
