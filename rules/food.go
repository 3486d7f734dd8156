package rules

// Rand is the source of randomness for food and obstacle placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

func randomPoint(rng Rand, width, height int) Point {
	return Point{X: rng.Intn(width), Y: rng.Intn(height)}
}

// getUnoccupiedPoint samples up to attempts random cells and returns the
// first one that is not in any of the occupied sets. It returns nil when the
// budget is exhausted.
func getUnoccupiedPoint(rng Rand, width, height, attempts int, occupied ...[]Point) *Point {
	for i := 0; i < attempts; i++ {
		p := randomPoint(rng, width, height)
		if !anyOccupied(p, occupied) {
			return &p
		}
	}
	return nil
}

func anyOccupied(p Point, sets [][]Point) bool {
	for _, set := range sets {
		if isOccupied(p, set) {
			return true
		}
	}
	return false
}

// generateFood places a single food on a free cell, or nothing.
func generateFood(rng Rand, c Config, snake, obstacles []Point) *Point {
	return getUnoccupiedPoint(rng, c.Width, c.Height, c.FoodAttempts, snake, obstacles)
}

// generateObstacles places up to Width/ObstacleDivisor obstacles away from
// the snake and from each other. Running out of attempts yields fewer
// obstacles.
func generateObstacles(rng Rand, c Config, snake []Point) []Point {
	target := c.Width / c.ObstacleDivisor
	maxAttempts := target * c.ObstacleAttemptFactor
	obstacles := make([]Point, 0, target)

	for attempts := 0; len(obstacles) < target && attempts < maxAttempts; attempts++ {
		p := randomPoint(rng, c.Width, c.Height)
		if isOccupied(p, snake) || isOccupied(p, obstacles) {
			continue
		}
		obstacles = append(obstacles, p)
	}
	return obstacles
}
