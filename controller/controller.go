// Package controller hosts a single game. It owns the engine, the clock and
// the high score, and hands frames and notifications to the renderer and
// notifier. Everything runs on the goroutine that calls Run.
package controller

import (
	"context"
	"time"

	"github.com/battlesnakeio/snake/rules"
	log "github.com/sirupsen/logrus"
)

// Scheduler is the clock driving the game. C must return nil while the
// scheduler is stopped.
type Scheduler interface {
	Start(interval time.Duration)
	Stop()
	C() <-chan time.Time
}

// Renderer draws the current state of the game.
type Renderer interface {
	Render(View) error
}

// Recorder keeps every frame of a game, for replays.
type Recorder interface {
	Record(rules.Frame) error
}

// View is everything a renderer needs for one screen.
type View struct {
	Frame     rules.Frame
	HighScore int
	Paused    bool
}

// Intent is a player input. Either Direction is set or TogglePause is true.
type Intent struct {
	Direction   rules.Direction
	TogglePause bool
}

// Controller runs a game against a clock and a high score store.
type Controller struct {
	Game         *rules.Game
	Store        Store
	Clock        Scheduler
	Renderer     Renderer
	Notifier     Notifier
	Recorder     Recorder
	HighScoreKey string

	highScore int
	paused    bool
	halted    bool
}

// New will initialize a new Controller. Renderer, Notifier and Recorder are
// optional and can be set on the returned value.
func New(game *rules.Game, store Store, clock Scheduler) *Controller {
	return &Controller{
		Game:         game,
		Store:        store,
		Clock:        clock,
		Notifier:     LogNotifier{},
		HighScoreKey: DefaultHighScoreKey,
	}
}

// HighScore returns the best score seen so far.
func (c *Controller) HighScore() int { return c.highScore }

// Paused reports whether the player paused the game.
func (c *Controller) Paused() bool { return c.paused }

// Halted reports whether the board filled up and the controller stopped.
func (c *Controller) Halted() bool { return c.halted }

// Start reads the stored high score and starts the clock at the game speed.
func (c *Controller) Start(ctx context.Context) error {
	score, err := c.Store.GetHighScore(ctx, c.HighScoreKey)
	switch err {
	case nil:
		c.highScore = score
	case ErrNotFound:
		c.highScore = 0
	default:
		log.WithError(err).WithField("key", c.HighScoreKey).
			Warn("unable to read high score, starting from 0")
		c.highScore = 0
	}

	if c.Game.Status == rules.GameStatusWon {
		return c.win(ctx)
	}

	frame := c.Game.Frame()
	c.record(frame)
	if err := c.render(frame); err != nil {
		return err
	}
	c.startClock()
	log.WithFields(log.Fields{
		"GameID":    c.Game.ID,
		"HighScore": c.highScore,
	}).Info("game started")
	return nil
}

// Step runs the game one tick and reacts to the result: eating raises the
// high score, a speed change reschedules the clock, a death ends the game
// and resets it.
func (c *Controller) Step(ctx context.Context) error {
	res, err := c.Game.Tick()
	if err != nil {
		return err
	}
	c.record(res.Frame)

	if res.Death != nil {
		return c.gameOver(ctx, res)
	}
	if res.Ate {
		foodEaten.Inc()
		c.updateHighScore(ctx, c.Game.Score)
	}
	if res.Reschedule {
		c.Clock.Stop()
		c.Clock.Start(res.Interval)
		tickInterval.Set(res.Interval.Seconds())
	}
	return c.render(res.Frame)
}

// Handle applies a player intent. Direction intents are ignored while the
// game is paused or halted.
func (c *Controller) Handle(in Intent) error {
	if c.halted {
		return nil
	}
	if in.TogglePause {
		return c.togglePause()
	}
	if c.paused {
		return nil
	}
	if !c.Game.ChangeDirection(in.Direction) {
		log.WithFields(log.Fields{
			"GameID":    c.Game.ID,
			"Direction": in.Direction,
			"Heading":   c.Game.Direction,
		}).Debug("direction ignored")
	}
	return nil
}

// Run starts the game and processes ticks and intents until ctx is done or
// the board is full. Ticks and intents are handled one at a time.
func (c *Controller) Run(ctx context.Context, intents <-chan Intent) error {
	if err := c.Start(ctx); err != nil {
		return err
	}
	defer c.Clock.Stop()

	for !c.halted {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-intents:
			if !ok {
				intents = nil
				continue
			}
			if err := c.Handle(in); err != nil {
				return err
			}
		case <-c.Clock.C():
			if err := c.Step(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Controller) gameOver(ctx context.Context, res *rules.TickResult) error {
	c.Clock.Stop()
	gamesPlayed.WithLabelValues(string(rules.GameStatusOver)).Inc()
	if err := c.render(res.Frame); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"GameID":    c.Game.ID,
		"Turn":      res.Turn,
		"Cause":     res.Death.Cause,
		"Score":     res.Death.FinalScore,
		"HighScore": c.highScore,
	}).Info("game over")
	if err := c.notify(ctx, gameOverNotification(res.Death.FinalScore, c.highScore)); err != nil {
		return err
	}
	return c.reset(ctx)
}

func (c *Controller) reset(ctx context.Context) error {
	err := c.Game.Reset()
	c.updateHighScore(ctx, c.Game.Score)
	if err == rules.ErrBoardFull {
		return c.win(ctx)
	}
	if err != nil {
		return err
	}

	frame := c.Game.Frame()
	c.record(frame)
	if err := c.render(frame); err != nil {
		return err
	}
	c.startClock()
	return nil
}

func (c *Controller) win(ctx context.Context) error {
	c.Clock.Stop()
	c.halted = true
	gamesPlayed.WithLabelValues(string(rules.GameStatusWon)).Inc()

	frame := c.Game.Frame()
	c.record(frame)
	if err := c.render(frame); err != nil {
		return err
	}
	log.WithField("GameID", c.Game.ID).Info("board full")
	return c.notify(ctx, winNotification(c.Game.Score, c.highScore))
}

func (c *Controller) togglePause() error {
	c.paused = !c.paused
	if c.paused {
		c.Clock.Stop()
	} else {
		c.startClock()
	}
	log.WithFields(log.Fields{
		"GameID": c.Game.ID,
		"Paused": c.paused,
	}).Info("pause toggled")
	return c.render(c.Game.Frame())
}

func (c *Controller) startClock() {
	c.Clock.Start(c.Game.Speed)
	tickInterval.Set(c.Game.Speed.Seconds())
}

func (c *Controller) updateHighScore(ctx context.Context, score int) {
	if score <= c.highScore {
		return
	}
	c.highScore = score
	if err := c.Store.PutHighScore(ctx, c.HighScoreKey, score); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"key":   c.HighScoreKey,
			"score": score,
		}).Error("unable to save high score")
	}
}

func (c *Controller) render(frame rules.Frame) error {
	if c.Renderer == nil {
		return nil
	}
	return c.Renderer.Render(View{
		Frame:     frame,
		HighScore: c.highScore,
		Paused:    c.paused,
	})
}

func (c *Controller) record(frame rules.Frame) {
	if c.Recorder == nil {
		return
	}
	if err := c.Recorder.Record(frame); err != nil {
		log.WithError(err).WithField("GameID", frame.GameID).Error("unable to record frame")
	}
}

func (c *Controller) notify(ctx context.Context, n Notification) error {
	if c.Notifier == nil {
		return nil
	}
	return c.Notifier.Notify(ctx, n)
}
