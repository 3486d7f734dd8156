// Package worker provides the clock that paces a game. The host owns the
// clock and decides when it starts, stops and changes interval; the clock only
// delivers ticks.
package worker

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Clock is a periodic ticker that can be stopped and restarted at a new
// interval. A stopped Clock never delivers a tick, including one that was
// already pending when it was stopped.
type Clock struct {
	ticker   *time.Ticker
	interval time.Duration
}

// NewClock returns a stopped clock.
func NewClock() *Clock {
	return &Clock{}
}

// Start (re)starts the clock at the given interval. A running clock is
// stopped first so two tickers never overlap.
func (c *Clock) Start(interval time.Duration) {
	c.Stop()
	c.ticker = time.NewTicker(interval)
	c.interval = interval
	log.WithField("interval", interval).Debug("clock started")
}

// Stop halts the clock and discards any pending tick.
func (c *Clock) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	select {
	case <-c.ticker.C:
	default:
	}
	c.ticker = nil
	log.WithField("interval", c.interval).Debug("clock stopped")
}

// C returns the tick channel, or nil while stopped. Receiving from a nil
// channel blocks forever, so a select on a stopped clock never fires.
func (c *Clock) C() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}
