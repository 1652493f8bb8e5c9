package controller

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "holosnake",
			Subsystem: "store",
			Name:      "calls",
			Help:      "Calls processed by the high score store.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(storeCalls)
}

type metrics struct{ s Store }

func (m *metrics) GetHighScore(c context.Context) (int, error) {
	defer instrument("GetHighScore")()
	return m.s.GetHighScore(c)
}

func (m *metrics) PutHighScore(c context.Context, score int) error {
	defer instrument("PutHighScore")()
	return m.s.PutHighScore(c, score)
}
