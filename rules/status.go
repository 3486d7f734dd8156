package rules

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	// GameStatusRunning represents a game that accepts ticks
	GameStatusRunning GameStatus = "running"
	// GameStatusOver represents a game that ended on a terminal collision
	GameStatusOver GameStatus = "over"
	// GameStatusWon represents a game where no free cell was left for food
	GameStatusWon GameStatus = "won"
)
