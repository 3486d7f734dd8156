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
			Namespace: "snake",
			Subsystem: "store",
			Name:      "calls",
			Help:      "Calls processed by the high score store.",
		},
		[]string{"method"},
	)
	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Store calls that returned an error other than not found.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

func countError(method string, err error) error {
	if err != nil && err != ErrNotFound {
		storeErrors.WithLabelValues(method).Inc()
	}
	return err
}

func init() {
	prometheus.MustRegister(storeCalls, storeErrors)
}

type metrics struct{ s Store }

func (m *metrics) GetHighScore(ctx context.Context, key string) (int, error) {
	defer instrument("GetHighScore")()
	score, err := m.s.GetHighScore(ctx, key)
	return score, countError("GetHighScore", err)
}

func (m *metrics) PutHighScore(ctx context.Context, key string, score int) error {
	defer instrument("PutHighScore")()
	return countError("PutHighScore", m.s.PutHighScore(ctx, key, score))
}

// Close closes the underlying store if it holds resources.
func (m *metrics) Close() error {
	if c, ok := m.s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
