package controller

import "github.com/prometheus/client_golang/prometheus"

var (
	gamesPlayed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "controller",
			Name:      "games_total",
			Help:      "Finished games by outcome.",
		},
		[]string{"outcome"},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "controller",
			Name:      "food_eaten_total",
			Help:      "Food eaten across all games.",
		},
	)
	tickInterval = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "controller",
			Name:      "tick_interval_seconds",
			Help:      "Current interval between ticks.",
		},
	)
)

func init() {
	prometheus.MustRegister(gamesPlayed, foodEaten, tickInterval)
}
