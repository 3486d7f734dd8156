package rules

import "time"

// nextSpeed returns the tick interval after score was reached by eating.
// Every SpeedEvery points the interval drops by SpeedStep, never below
// MinSpeed. The bool reports whether the interval changed.
func nextSpeed(c Config, score int, speed time.Duration) (time.Duration, bool) {
	if score <= 0 || score%c.SpeedEvery != 0 || speed <= c.MinSpeed {
		return speed, false
	}
	next := speed - c.SpeedStep
	if next < c.MinSpeed {
		next = c.MinSpeed
	}
	return next, next != speed
}
