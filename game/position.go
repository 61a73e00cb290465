package game

import "fmt"

// Position identifies a cell of the hex grid in skewed (parallelogram) coordinates.
type Position struct {
	X int
	Y int
}

// Distance returns the Manhattan distance between two positions. It is only
// used for diagnostics, the search never looks at it.
func (p Position) Distance(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
