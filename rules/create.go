package rules

import (
	"errors"
	"time"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrBoardFull is returned by Reset when no free cell is left for food.
	ErrBoardFull = errors.New("rules: board full, no space for food")
	// ErrNotRunning is returned by Tick once the game is over or won.
	ErrNotRunning = errors.New("rules: game is not running")
)

// Game is the state of one snake game. A Game is owned by a single goroutine;
// none of its methods are safe for concurrent use.
type Game struct {
	ID        string
	Config    Config
	Turn      int
	Snake     []Point
	Direction Direction
	Food      *Point
	Obstacles []Point
	Score     int
	Speed     time.Duration
	Status    GameStatus
	Death     *Death

	// next is the latest accepted direction intent, applied on the next tick.
	next Direction
	rng  Rand
}

// NewGame validates the config and sets up the first game. A board that is
// full before the first tick returns the game together with ErrBoardFull.
func NewGame(c Config, rng Rand) (*Game, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	g := &Game{Config: c, rng: rng}
	return g, g.Reset()
}

// Reset restores the initial snake, direction, score and speed, regenerates
// the obstacles and then the food.
func (g *Game) Reset() error {
	g.ID = uuid.NewV4().String()
	g.Turn = 0
	g.Snake = g.Config.startSnake()
	g.Direction = Right
	g.next = Right
	g.Score = 0
	g.Speed = g.Config.StartSpeed
	g.Death = nil
	g.Obstacles = generateObstacles(g.rng, g.Config, g.Snake)
	g.Food = generateFood(g.rng, g.Config, g.Snake, g.Obstacles)

	if g.Food == nil {
		g.Status = GameStatusWon
		log.WithFields(log.Fields{
			"GameID":    g.ID,
			"Obstacles": len(g.Obstacles),
		}).Info("no space for food after reset")
		return ErrBoardFull
	}
	g.Status = GameStatusRunning
	log.WithFields(log.Fields{
		"GameID":    g.ID,
		"Obstacles": len(g.Obstacles),
		"Food":      *g.Food,
	}).Info("game reset")
	return nil
}

// ChangeDirection records a direction intent for the next tick. It is
// ignored when it would reverse the snake onto its neck, i.e. when it is the
// opposite of the direction the snake last moved in. Between two ticks the
// latest accepted intent wins.
func (g *Game) ChangeDirection(d Direction) bool {
	if !d.Valid() || d.IsOpposite(g.Direction) {
		return false
	}
	g.next = d
	return true
}

// Heading returns the direction the snake will move in on the next tick.
func (g *Game) Heading() Direction {
	return g.next
}

// Head returns the first point in the snake.
func (g *Game) Head() Point {
	return g.Snake[0]
}
