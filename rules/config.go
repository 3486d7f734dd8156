package rules

import (
	"fmt"
	"time"
)

// Config holds the board geometry and the tuning of a single game.
type Config struct {
	// Width and Height are measured in cells.
	Width    int
	Height   int
	CellSize int

	StartLength int

	StartSpeed time.Duration
	MinSpeed   time.Duration
	SpeedStep  time.Duration
	SpeedEvery int

	FoodAttempts          int
	ObstacleDivisor       int
	ObstacleAttemptFactor int
}

// DefaultConfig is a 400x400 canvas with 20 unit cells.
func DefaultConfig() Config {
	return Config{
		Width:                 20,
		Height:                20,
		CellSize:              20,
		StartLength:           3,
		StartSpeed:            200 * time.Millisecond,
		MinSpeed:              50 * time.Millisecond,
		SpeedStep:             10 * time.Millisecond,
		SpeedEvery:            5,
		FoodAttempts:          100,
		ObstacleDivisor:       5,
		ObstacleAttemptFactor: 10,
	}
}

// ConfigFromCanvas builds the default config for a canvas measured in pixels.
func ConfigFromCanvas(width, height, cellSize int) Config {
	c := DefaultConfig()
	c.CellSize = cellSize
	if cellSize > 0 {
		c.Width = width / cellSize
		c.Height = height / cellSize
	}
	return c
}

// Validate checks the config can hold the initial snake and advance.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("rules: invalid board size %dx%d", c.Width, c.Height)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("rules: cell size must be at least 1, got %d", c.CellSize)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("rules: start length must be at least 1, got %d", c.StartLength)
	}
	if c.StartLength > (c.Width-1)/2+1 {
		return fmt.Errorf("rules: board width %d too small for a snake of length %d", c.Width, c.StartLength)
	}
	if c.StartSpeed <= 0 || c.MinSpeed <= 0 || c.MinSpeed > c.StartSpeed {
		return fmt.Errorf("rules: invalid speed range %s..%s", c.MinSpeed, c.StartSpeed)
	}
	if c.SpeedStep < 0 || c.SpeedEvery < 1 {
		return fmt.Errorf("rules: invalid speed step %s every %d points", c.SpeedStep, c.SpeedEvery)
	}
	if c.FoodAttempts < 1 || c.ObstacleDivisor < 1 || c.ObstacleAttemptFactor < 0 {
		return fmt.Errorf("rules: invalid placement budgets")
	}
	return nil
}

// startSnake is the initial body, head first, laid out to the left of the
// head so the first move to the right is safe. On a 20x20 board the head
// starts at (9, 9).
func (c Config) startSnake() []Point {
	head := Point{X: (c.Width - 1) / 2, Y: (c.Height - 1) / 2}
	snake := make([]Point, 0, c.StartLength)
	for i := 0; i < c.StartLength; i++ {
		snake = append(snake, Point{X: head.X - i, Y: head.Y})
	}
	return snake
}
