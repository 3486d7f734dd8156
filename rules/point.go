package rules

import "fmt"

// Point is a position on the board in cell units.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns the point one step away in the given direction. The result is
// not wrapped.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Wrap folds the point back onto a width x height board, so that leaving one
// edge re-enters from the opposite one.
func (p Point) Wrap(width, height int) Point {
	return Point{X: wrap(p.X, width), Y: wrap(p.Y, height)}
}

// Scale converts a cell position into canvas units.
func (p Point) Scale(cellSize int) Point {
	return Point{X: p.X * cellSize, Y: p.Y * cellSize}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func wrap(v, size int) int {
	return ((v % size) + size) % size
}

func isOccupied(p Point, segments []Point) bool {
	for _, s := range segments {
		if s.Equal(p) {
			return true
		}
	}
	return false
}

func clonePoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	out := make([]Point, len(points))
	copy(out, points)
	return out
}
