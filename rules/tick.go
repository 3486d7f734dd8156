package rules

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TickResult describes what happened during one tick.
type TickResult struct {
	Turn int
	Ate  bool
	// Death is set when the tick ended the game.
	Death *Death
	// Reschedule asks the host to restart its clock at Interval.
	Reschedule bool
	Interval   time.Duration
	Frame      Frame
}

// Tick advances the game by one step:
//  1. move the head one cell in the current direction, wrapping at the edges
//  2. check the new head for self and obstacle collisions
//  3. eat the food and grow, or drop the tail
func (g *Game) Tick() (*TickResult, error) {
	if g.Status != GameStatusRunning {
		return nil, ErrNotRunning
	}
	g.Turn++
	g.Direction = g.next
	result := &TickResult{Turn: g.Turn, Interval: g.Speed}

	head := g.Head().Add(g.Direction).Wrap(g.Config.Width, g.Config.Height)
	g.Snake = append([]Point{head}, g.Snake...)

	log.WithFields(log.Fields{
		"GameID":    g.ID,
		"Turn":      g.Turn,
		"Direction": g.Direction,
		"Head":      head,
	}).Debug("move")

	if cause := checkForDeath(g.Snake, g.Obstacles); cause != "" {
		g.Status = GameStatusOver
		g.Death = &Death{
			Cause:      cause,
			Turn:       g.Turn,
			FinalScore: g.Score,
		}
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
			"Cause":  cause,
			"Score":  g.Score,
		}).Info("game over")
		result.Death = g.Death
		result.Frame = g.Frame()
		return result, nil
	}

	if g.Food != nil && head.Equal(*g.Food) {
		g.eat(result)
	} else {
		g.Snake = g.Snake[:len(g.Snake)-1]
		if g.Food == nil {
			// The board was too crowded last time, try again now that the
			// snake has moved.
			g.Food = generateFood(g.rng, g.Config, g.Snake, g.Obstacles)
		}
	}

	result.Frame = g.Frame()
	return result, nil
}

func (g *Game) eat(result *TickResult) {
	result.Ate = true
	g.Score++
	g.Food = generateFood(g.rng, g.Config, g.Snake, g.Obstacles)

	fields := log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn,
		"Score":  g.Score,
		"Length": len(g.Snake),
	}
	if g.Food == nil {
		log.WithFields(fields).Warn("snake ate, no space for new food")
	} else {
		log.WithFields(fields).WithField("Food", *g.Food).Info("snake ate")
	}

	if speed, changed := nextSpeed(g.Config, g.Score, g.Speed); changed {
		g.Speed = speed
		result.Reschedule = true
		result.Interval = speed
		log.WithFields(fields).WithField("Speed", speed).Info("speed up")
	}
}
