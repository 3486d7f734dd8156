package rules

// checkForDeath looks at the new head (already wrapped) and reports the
// terminal collision it causes, if any. Self collision is checked before
// obstacle collision.
func checkForDeath(snake, obstacles []Point) string {
	if len(snake) == 0 {
		return ""
	}
	head := snake[0]
	if deathBySelfCollision(head, snake[1:]) {
		return DeathCauseSnakeSelfCollision
	}
	if deathByObstacle(head, obstacles) {
		return DeathCauseObstacleCollision
	}
	return ""
}

func deathBySelfCollision(head Point, body []Point) bool {
	return isOccupied(head, body)
}

func deathByObstacle(head Point, obstacles []Point) bool {
	return isOccupied(head, obstacles)
}
