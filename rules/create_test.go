package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g, err := NewGame(DefaultConfig(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.NotEmpty(t, g.ID)
	require.Equal(t, GameStatusRunning, g.Status)
	require.Equal(t, startSnake, g.Snake)
	require.Equal(t, Right, g.Direction)
	require.Equal(t, Right, g.Heading())
	require.Equal(t, 0, g.Score)
	require.Equal(t, ms(200), g.Speed)
	require.True(t, len(g.Obstacles) <= 4)

	for i, o := range g.Obstacles {
		require.False(t, isOccupied(o, g.Snake), "obstacle on snake: %s", o)
		require.False(t, isOccupied(o, g.Obstacles[i+1:]), "duplicate obstacle: %s", o)
	}
	require.NotNil(t, g.Food)
	require.False(t, isOccupied(*g.Food, g.Snake))
	require.False(t, isOccupied(*g.Food, g.Obstacles))
}

func TestNewGameInvalidConfig(t *testing.T) {
	c := DefaultConfig()
	c.Width = 4
	_, err := NewGame(c, rand.New(rand.NewSource(1)))
	require.Error(t, err)

	c = DefaultConfig()
	c.MinSpeed = c.StartSpeed * 2
	_, err = NewGame(c, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

func TestResetRestoresInitialState(t *testing.T) {
	g, err := NewGame(DefaultConfig(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	firstID := g.ID

	g.Snake = []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 4}}
	g.Direction = Up
	g.next = Left
	g.Score = 12
	g.Speed = ms(180)
	g.Turn = 99
	g.Status = GameStatusOver
	g.Death = &Death{Cause: DeathCauseObstacleCollision}

	require.NoError(t, g.Reset())
	require.NotEqual(t, firstID, g.ID)
	require.Equal(t, startSnake, g.Snake)
	require.Equal(t, Right, g.Direction)
	require.Equal(t, Right, g.Heading())
	require.Equal(t, 0, g.Score)
	require.Equal(t, 0, g.Turn)
	require.Equal(t, ms(200), g.Speed)
	require.Equal(t, GameStatusRunning, g.Status)
	require.Nil(t, g.Death)
}

func TestResetBoardFull(t *testing.T) {
	c := DefaultConfig()
	c.Width, c.Height, c.StartLength = 1, 1, 1
	g, err := NewGame(c, &seqRand{values: []int{0}})
	require.Equal(t, ErrBoardFull, err)
	require.NotNil(t, g)
	require.Equal(t, GameStatusWon, g.Status)
	require.Nil(t, g.Food)

	_, err = g.Tick()
	require.Equal(t, ErrNotRunning, err)
}

func TestConfigFromCanvas(t *testing.T) {
	c := ConfigFromCanvas(400, 300, 20)
	require.Equal(t, 20, c.Width)
	require.Equal(t, 15, c.Height)
	require.Equal(t, 20, c.CellSize)
	require.NoError(t, c.Validate())
}

func TestConfigFromCanvasZeroCellSize(t *testing.T) {
	c := ConfigFromCanvas(400, 400, 0)
	require.EqualError(t, c.Validate(), "rules: cell size must be at least 1, got 0")

	_, err := NewGame(c, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}
