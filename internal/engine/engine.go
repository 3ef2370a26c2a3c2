// Package engine runs the fixed-tick game loop. It owns no terminal state:
// input and output arrive through the Input and Renderer collaborators.
package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/world"
)

// Input yields player actions.
type Input interface {
	// Poll blocks for at most timeout and returns the next action, if any.
	// ok is false when the timeout elapsed without a recognized key.
	Poll(ctx context.Context, timeout time.Duration) (a core.Action, ok bool, err error)
}

// Renderer draws a frame.
type Renderer interface {
	Render(snap world.Snapshot) error
}

// Listener is notified after every simulation step.
type Listener interface {
	OnStep(res world.StepResult)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(res world.StepResult)

func (f ListenerFunc) OnStep(res world.StepResult) { f(res) }

// Outcome tells why the loop ended.
type Outcome int

const (
	OutcomeLost Outcome = iota // Player health reached zero
	OutcomeQuit                // Quit key or context cancellation
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result summarizes a finished run.
type Result struct {
	Outcome Outcome
	Score   uint32
	Ticks   uint64
}
