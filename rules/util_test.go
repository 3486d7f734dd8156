package rules

import "time"

// seqRand replays a fixed list of values, cycling when it runs out.
type seqRand struct {
	values []int
	calls  int
}

func (r *seqRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

func testGame(snake []Point, dir Direction, food *Point, obstacles []Point, rng Rand) *Game {
	c := DefaultConfig()
	return &Game{
		ID:        "test",
		Config:    c,
		Snake:     snake,
		Direction: dir,
		next:      dir,
		Food:      food,
		Obstacles: obstacles,
		Speed:     c.StartSpeed,
		Status:    GameStatusRunning,
		rng:       rng,
	}
}

func pt(x, y int) *Point { return &Point{X: x, Y: y} }

var startSnake = []Point{{X: 9, Y: 9}, {X: 8, Y: 9}, {X: 7, Y: 9}}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
