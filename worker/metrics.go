package worker

import (
	"github.com/battlesnakeio/holosnake/rules"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	frames = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "holosnake",
			Subsystem: "worker",
			Name:      "frames_total",
			Help:      "Frames processed, by mode.",
		},
		[]string{"mode"},
	)
	frameDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "holosnake",
			Subsystem: "worker",
			Name:      "frame_seconds",
			Help:      "Time spent processing a frame.",
			Buckets:   []float64{.001, .0025, .005, .01, .02, .033, .05, .1},
		},
	)
	gameOvers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "holosnake",
			Subsystem: "worker",
			Name:      "game_overs_total",
			Help:      "Rounds ended, by cause.",
		},
		[]string{"cause"},
	)
	events = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "holosnake",
			Subsystem: "worker",
			Name:      "events_total",
			Help:      "Events emitted by the menu and the simulation.",
		},
		[]string{"event"},
	)
)

func init() {
	prometheus.MustRegister(frames, frameDuration, gameOvers, events)
}

// EventCounter counts every event it is notified of.
var EventCounter rules.Notifier = rules.NotifierFunc(func(e rules.Event) {
	events.WithLabelValues(string(e)).Inc()
})
