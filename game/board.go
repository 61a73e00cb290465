package game

import (
	"fmt"
	"strings"
)

const noNeighbor = -1

// Board is a Hex board of side n laid out as a parallelogram: row x holds the
// cells (x, x) .. (x, x+n-1). Blue connects the left edge (x, x) to the right
// edge (x, x+n-1); Red connects the top row x = 0 to the bottom row x = n-1.
//
// A Board is owned by whoever created it. Use Copy to branch.
type Board struct {
	size      int
	width     int                  // 2n-1 columns in the dense layout
	cells     []CellState          // indexed by x*width + y
	neighbors [][numDirections]int // per cell index, noNeighbor when off the board
}

// NewBoard creates an empty board of the given side length.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	b := &Board{
		size:  size,
		width: 2*size - 1,
	}
	b.cells = make([]CellState, size*b.width)
	b.linkNeighbors()
	return b, nil
}

// linkNeighbors precomputes adjacency once; it is never mutated afterwards.
func (b *Board) linkNeighbors() {
	b.neighbors = make([][numDirections]int, len(b.cells))
	for i := range b.neighbors {
		for d := range b.neighbors[i] {
			b.neighbors[i][d] = noNeighbor
		}
	}
	b.each(func(p Position) {
		i := b.index(p)
		for _, d := range Directions() {
			if n := d.Neighbor(p); b.InBounds(n) {
				b.neighbors[i][d] = b.index(n)
			}
		}
	})
}

// each visits every valid position in row-major order.
func (b *Board) each(fn func(Position)) {
	for x := 0; x < b.size; x++ {
		for y := x; y < b.size+x; y++ {
			fn(Position{X: x, Y: y})
		}
	}
}

func (b *Board) index(p Position) int {
	return p.X*b.width + p.Y
}

func (b *Board) position(i int) Position {
	return Position{X: i / b.width, Y: i % b.width}
}

// Size returns the side length n.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether p is a cell of this board.
func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= p.X && p.Y < b.size+p.X
}

// Cell returns the occupancy of p.
func (b *Board) Cell(p Position) (CellState, error) {
	if !b.InBounds(p) {
		return Empty, fmt.Errorf("%w: %s", ErrInvalidPosition, p)
	}
	return b.cells[b.index(p)], nil
}

// MustCell is Cell for callers that already checked bounds.
func (b *Board) MustCell(p Position) CellState {
	state, err := b.Cell(p)
	if err != nil {
		panic(err)
	}
	return state
}

// Set overwrites the occupancy of p.
func (b *Board) Set(p Position, state CellState) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, p)
	}
	b.cells[b.index(p)] = state
	return nil
}

// Place puts a stone of the given color on an empty cell.
func (b *Board) Place(p Position, color CellState) error {
	state, err := b.Cell(p)
	if err != nil {
		return err
	}
	if state != Empty {
		return fmt.Errorf("%w: %s holds %s", ErrOccupied, p, state)
	}
	b.cells[b.index(p)] = color
	return nil
}

// Neighbors returns the on-board neighbors of p in direction order.
func (b *Board) Neighbors(p Position) []Position {
	if !b.InBounds(p) {
		return nil
	}
	var out []Position
	for _, j := range b.neighbors[b.index(p)] {
		if j != noNeighbor {
			out = append(out, b.position(j))
		}
	}
	return out
}

// Neighbor returns the neighbor of p in direction d, if any.
func (b *Board) Neighbor(p Position, d Direction) (Position, bool) {
	if !b.InBounds(p) {
		return Position{}, false
	}
	j := b.neighbors[b.index(p)][d]
	if j == noNeighbor {
		return Position{}, false
	}
	return b.position(j), true
}

// AvailableMoves lists the empty cells in row-major order. The slice index is
// the move number used by random rollouts, so the order must stay stable.
func (b *Board) AvailableMoves() []Position {
	moves := make([]Position, 0, len(b.cells))
	b.each(func(p Position) {
		if b.cells[b.index(p)] == Empty {
			moves = append(moves, p)
		}
	})
	return moves
}

// IsTerminal reports whether a player has won or the board is full.
func (b *Board) IsTerminal() bool {
	return b.HasWon(Blue) || b.HasWon(Red) || !b.hasEmpty()
}

func (b *Board) hasEmpty() bool {
	found := false
	b.each(func(p Position) {
		if !found && b.cells[b.index(p)] == Empty {
			found = true
		}
	})
	return found
}

// HasWon runs a breadth-first search from the color's starting edge through
// same-colored neighbors and reports whether it reaches the opposite edge.
func (b *Board) HasWon(color CellState) bool {
	var queue []int
	switch color {
	case Blue:
		for x := 0; x < b.size; x++ {
			if i := b.index(Position{X: x, Y: x}); b.cells[i] == Blue {
				queue = append(queue, i)
			}
		}
	case Red:
		for y := 0; y < b.size; y++ {
			if i := b.index(Position{X: 0, Y: y}); b.cells[i] == Red {
				queue = append(queue, i)
			}
		}
	default:
		return false
	}

	visited := make([]bool, len(b.cells))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if visited[i] {
			continue
		}
		visited[i] = true

		p := b.position(i)
		if color == Blue && p.Y == p.X+b.size-1 {
			return true
		}
		if color == Red && p.X == b.size-1 {
			return true
		}

		for _, j := range b.neighbors[i] {
			if j != noNeighbor && b.cells[j] == color && !visited[j] {
				queue = append(queue, j)
			}
		}
	}
	return false
}

// Winner returns the color that has won, or Empty.
func (b *Board) Winner() CellState {
	if b.HasWon(Blue) {
		return Blue
	}
	if b.HasWon(Red) {
		return Red
	}
	return Empty
}

// Copy returns an independent board with the same occupancy. Adjacency is
// rebuilt for the copy.
func (b *Board) Copy() *Board {
	c := &Board{
		size:  b.size,
		width: b.width,
		cells: make([]CellState, len(b.cells)),
	}
	copy(c.cells, b.cells)
	c.linkNeighbors()
	return c
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// Equal reports whether both boards have the same size and occupancy.
func (b *Board) Equal(other *Board) bool {
	if b == other {
		return true
	}
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding the given state.
func (b *Board) Count(state CellState) int {
	n := 0
	b.each(func(p Position) {
		if b.cells[b.index(p)] == state {
			n++
		}
	})
	return n
}

// String renders the board as text, one row per line, shifted to keep the hex shape.
func (b *Board) String() string {
	var sb strings.Builder
	for x := 0; x < b.size; x++ {
		sb.WriteString(strings.Repeat(" ", x))
		for y := x; y < b.size+x; y++ {
			switch b.cells[b.index(Position{X: x, Y: y})] {
			case Blue:
				sb.WriteString("B ")
			case Red:
				sb.WriteString("R ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
