// Package worker runs the frame loop. Each tick it polls the input source,
// gates gestures, advances the state machine and hands the view to every
// sink.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/battlesnakeio/holosnake/input"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrStopped is returned by a Source when the player closed it. Run treats it
// as a clean exit.
var ErrStopped = errors.New("worker: input stopped")

// Source produces the input for the current tick. Poll must not block for
// longer than a frame.
type Source interface {
	Poll(ctx context.Context) (input.Frame, error)
}

// Sink consumes a view per tick.
type Sink interface {
	Render(controller.View) error
}

// Worker is the frame loop.
type Worker struct {
	Machine       *controller.Machine
	Source        Source
	Sinks         []Sink
	Gestures      *input.Gestures
	FrameInterval time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Run ticks until the context is cancelled, the player quits or the source
// fails.
func (w *Worker) Run(ctx context.Context) error {
	interval := w.FrameInterval
	if interval <= 0 {
		interval = time.Second / 30
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	log.WithField("interval", interval).Info("frame loop started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}

		view, err := w.Step(ctx)
		if err != nil {
			if errors.Cause(err) == ErrStopped {
				log.Info("input stopped")
				return nil
			}
			return err
		}
		if view.Quit {
			log.Info("frame loop finished")
			return nil
		}
	}
}

func (w *Worker) now() time.Time {
	if w.Clock != nil {
		return w.Clock()
	}
	return time.Now()
}
