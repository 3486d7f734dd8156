package rules

// Frame is a read-only snapshot of a game, suitable for rendering and
// recording. It shares no memory with the Game it was taken from.
type Frame struct {
	GameID    string     `json:"gameId"`
	Turn      int        `json:"turn"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	CellSize  int        `json:"cellSize"`
	Snake     []Point    `json:"snake"`
	Food      *Point     `json:"food,omitempty"`
	Obstacles []Point    `json:"obstacles"`
	Direction Direction  `json:"direction"`
	Score     int        `json:"score"`
	Status    GameStatus `json:"status"`
	Death     *Death     `json:"death,omitempty"`
}

// Frame returns a snapshot of the current state.
func (g *Game) Frame() Frame {
	f := Frame{
		GameID:    g.ID,
		Turn:      g.Turn,
		Width:     g.Config.Width,
		Height:    g.Config.Height,
		CellSize:  g.Config.CellSize,
		Snake:     clonePoints(g.Snake),
		Obstacles: clonePoints(g.Obstacles),
		Direction: g.Direction,
		Score:     g.Score,
		Status:    g.Status,
	}
	if g.Food != nil {
		food := *g.Food
		f.Food = &food
	}
	if g.Death != nil {
		death := *g.Death
		f.Death = &death
	}
	return f
}

// Head returns the first point of the snake, or false for an empty frame.
func (f Frame) Head() (Point, bool) {
	if len(f.Snake) == 0 {
		return Point{}, false
	}
	return f.Snake[0], true
}
