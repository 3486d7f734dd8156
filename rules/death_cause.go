package rules

const (
	// DeathCauseSnakeSelfCollision is the death reason when the head runs into the body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseObstacleCollision is the death reason when the head runs into an obstacle
	DeathCauseObstacleCollision = "obstacle-collision"
)

// Death records why and when a game ended.
type Death struct {
	Cause      string `json:"cause"`
	Turn       int    `json:"turn"`
	FinalScore int    `json:"finalScore"`
}
