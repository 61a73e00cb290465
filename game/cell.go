package game

import (
	"fmt"
	"strings"
)

// CellState is the occupancy of a cell. Blue and Red are the two players.
type CellState int

const (
	Empty CellState = iota
	Blue
	Red
)

// Opposite returns the other player's color. Empty stays Empty.
func (c CellState) Opposite() CellState {
	switch c {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return Empty
	}
}

func (c CellState) String() string {
	switch c {
	case Blue:
		return "BLUE"
	case Red:
		return "RED"
	default:
		return "EMPTY"
	}
}

// ParseCellState converts a color name (case-insensitive) into a CellState.
func ParseCellState(name string) (CellState, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BLUE":
		return Blue, nil
	case "RED":
		return Red, nil
	case "EMPTY":
		return Empty, nil
	}
	return Empty, fmt.Errorf("unknown color %q", name)
}

// Direction is one of the six axial directions of the hex grid.
type Direction int

const (
	NorthWest Direction = iota
	NorthEast
	SouthWest
	SouthEast
	Left
	Right

	numDirections = 6
)

// offsets are indexed by Direction
var offsets = [numDirections]Position{
	NorthWest: {X: -1, Y: -1},
	NorthEast: {X: -1, Y: 0},
	SouthWest: {X: 1, Y: 0},
	SouthEast: {X: 1, Y: 1},
	Left:      {X: 0, Y: -1},
	Right:     {X: 0, Y: 1},
}

// Directions lists every direction in declaration order.
func Directions() []Direction {
	return []Direction{NorthWest, NorthEast, SouthWest, SouthEast, Left, Right}
}

// Neighbor returns the position one step away from p in direction d. The
// result may lie outside any board.
func (d Direction) Neighbor(p Position) Position {
	o := offsets[d]
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case NorthWest:
		return "NW"
	case NorthEast:
		return "NE"
	case SouthWest:
		return "SW"
	case SouthEast:
		return "SE"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
