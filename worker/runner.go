package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/pkg/errors"
)

// Step runs a single frame.
func (w *Worker) Step(ctx context.Context) (controller.View, error) {
	start := time.Now()
	defer func() { frameDuration.Observe(time.Since(start).Seconds()) }()

	frame, err := w.Source.Poll(ctx)
	if err != nil {
		return controller.View{}, errors.Wrap(err, "unable to poll input")
	}

	now := w.now()
	if w.Gestures != nil {
		frame = w.Gestures.Filter(frame, now)
	}

	before := w.Machine.View()
	view := w.Machine.Update(frame, now)
	frames.WithLabelValues(string(view.Mode)).Inc()
	if view.Game != nil && view.Game.GameOver && (before.Game == nil || !before.Game.GameOver) {
		gameOvers.WithLabelValues(view.Game.Cause).Inc()
	}

	for _, s := range w.Sinks {
		if err := s.Render(view); err != nil {
			return view, errors.Wrap(err, "unable to render frame")
		}
	}
	return view, nil
}
