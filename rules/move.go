package rules

import (
	"fmt"
	"strings"
)

// Direction is a unit step on the board. Only the four axis-aligned
// directions are valid.
type Direction struct {
	X int
	Y int
}

var (
	// Up moves towards row 0.
	Up = Direction{X: 0, Y: -1}
	// Down moves towards the last row.
	Down = Direction{X: 0, Y: 1}
	// Left moves towards column 0.
	Left = Direction{X: -1, Y: 0}
	// Right moves towards the last column.
	Right = Direction{X: 1, Y: 0}
)

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// IsOpposite reports whether d is the exact reverse of other.
func (d Direction) IsOpposite(other Direction) bool {
	return d.X == -other.X && d.Y == -other.Y
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d, %d)", d.X, d.Y)
}

// ParseDirection converts "up", "down", "left" or "right" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Direction{}, fmt.Errorf("rules: invalid direction %q", s)
}

// MarshalText encodes d by name, so frames and logs read "up" not {0 -1}.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
