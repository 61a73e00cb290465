package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := NewBoard(size)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("rejects degenerate sizes", func(t *testing.T) {
		for _, size := range []int{0, -3} {
			_, err := NewBoard(size)
			require.ErrorIs(t, err, ErrInvalidSize, "Size %d should be rejected", size)
		}
	})

	t.Run("accepts exactly n squared coordinates", func(t *testing.T) {
		for n := 1; n <= 7; n++ {
			b := newTestBoard(t, n)
			count := 0
			for x := -2; x < 2*n+2; x++ {
				for y := -2; y < 3*n+2; y++ {
					if b.InBounds(Position{X: x, Y: y}) {
						count++
					}
				}
			}
			require.Equal(t, n*n, count, "Board of size %d should have n^2 cells", n)
		}
	})

	t.Run("fresh board lists every cell as available in row-major order", func(t *testing.T) {
		for n := 1; n <= 6; n++ {
			b := newTestBoard(t, n)
			moves := b.AvailableMoves()
			require.Len(t, moves, n*n, "All cells should be free on a new board")

			i := 0
			for x := 0; x < n; x++ {
				for y := x; y < n+x; y++ {
					require.Equal(t, Position{X: x, Y: y}, moves[i], "Move %d should follow row-major order", i)
					i++
				}
			}
		}
	})
}

func TestBoardCellAccess(t *testing.T) {
	b := newTestBoard(t, 5)

	t.Run("rejects positions off the board", func(t *testing.T) {
		for _, p := range []Position{{-1, -1}, {0, 5}, {2, 1}, {5, 5}, {4, 9}} {
			_, err := b.Cell(p)
			require.ErrorIs(t, err, ErrInvalidPosition, "Cell %s should be invalid", p)
			require.ErrorIs(t, b.Set(p, Blue), ErrInvalidPosition)
			require.Panics(t, func() { b.MustCell(p) })
		}
	})

	t.Run("place refuses occupied cells", func(t *testing.T) {
		p := Position{X: 2, Y: 3}
		require.NoError(t, b.Place(p, Red))
		require.ErrorIs(t, b.Place(p, Blue), ErrOccupied)
		require.Equal(t, Red, b.MustCell(p))
		require.NotContains(t, b.AvailableMoves(), p, "Occupied cell should not be available")
	})
}

func TestBoardAdjacency(t *testing.T) {
	t.Run("adjacency is symmetric", func(t *testing.T) {
		b := newTestBoard(t, 6)
		b.each(func(p Position) {
			for _, d := range Directions() {
				n, ok := b.Neighbor(p, d)
				if !ok {
					continue
				}
				back, ok := b.Neighbor(n, d.Opposite())
				require.True(t, ok, "%s should have a %s neighbor", n, d.Opposite())
				require.Equal(t, p, back)
			}
		})
	})

	t.Run("corner and interior neighbor counts", func(t *testing.T) {
		b := newTestBoard(t, 5)
		require.Len(t, b.Neighbors(Position{X: 0, Y: 0}), 2)
		require.Len(t, b.Neighbors(Position{X: 0, Y: 4}), 3)
		require.Len(t, b.Neighbors(Position{X: 2, Y: 4}), 6)
		require.Nil(t, b.Neighbors(Position{X: 3, Y: 0}))
	})

	t.Run("one by one board has no neighbors", func(t *testing.T) {
		b := newTestBoard(t, 1)
		require.Empty(t, b.Neighbors(Position{X: 0, Y: 0}))
	})
}

func TestBoardHasWon(t *testing.T) {
	t.Run("empty board has no winner", func(t *testing.T) {
		b := newTestBoard(t, 5)
		require.False(t, b.HasWon(Blue))
		require.False(t, b.HasWon(Red))
		require.False(t, b.HasWon(Empty))
		require.False(t, b.IsTerminal())
		require.Equal(t, Empty, b.Winner())
	})

	t.Run("red top row alone does not win", func(t *testing.T) {
		b := newTestBoard(t, 5)
		for y := 0; y < 5; y++ {
			require.NoError(t, b.Set(Position{X: 0, Y: y}, Red))
		}
		require.False(t, b.HasWon(Red), "Top row is disconnected from the bottom")
		require.False(t, b.HasWon(Blue))
	})

	t.Run("red column from top to bottom wins", func(t *testing.T) {
		for n := 1; n <= 6; n++ {
			b := newTestBoard(t, n)
			for x := 0; x < n; x++ {
				require.NoError(t, b.Set(Position{X: x, Y: x}, Red))
			}
			require.True(t, b.HasWon(Red), "Red chain along SE should win on size %d", n)
			require.True(t, b.IsTerminal())
		}
	})

	t.Run("blue row from left to right wins", func(t *testing.T) {
		for n := 1; n <= 6; n++ {
			b := newTestBoard(t, n)
			row := n / 2
			for y := row; y < row+n; y++ {
				require.NoError(t, b.Set(Position{X: row, Y: y}, Blue))
			}
			require.True(t, b.HasWon(Blue), "Blue row should win on size %d", n)
			require.False(t, b.HasWon(Red))
		}
	})

	t.Run("blue left edge only wins on the degenerate board", func(t *testing.T) {
		for n := 1; n <= 5; n++ {
			b := newTestBoard(t, n)
			for x := 0; x < n; x++ {
				require.NoError(t, b.Set(Position{X: x, Y: x}, Blue))
			}
			require.Equal(t, n == 1, b.HasWon(Blue), "size %d", n)
		}
	})

	t.Run("bent blue path wins", func(t *testing.T) {
		b := newTestBoard(t, 3)
		path := []Position{{1, 1}, {1, 2}, {2, 3}, {2, 4}}
		for _, p := range path {
			require.NoError(t, b.Set(p, Blue))
		}
		require.True(t, b.HasWon(Blue))
	})

	t.Run("gap breaks the connection", func(t *testing.T) {
		b := newTestBoard(t, 4)
		for _, p := range []Position{{1, 1}, {1, 2}, {1, 4}} {
			require.NoError(t, b.Set(p, Blue))
		}
		require.False(t, b.HasWon(Blue))
		require.NoError(t, b.Set(Position{X: 1, Y: 3}, Red))
		require.False(t, b.HasWon(Blue), "Opponent stone should block the path")
	})

	t.Run("full board is terminal", func(t *testing.T) {
		b := newTestBoard(t, 2)
		b.each(func(p Position) {
			require.NoError(t, b.Set(p, Red))
		})
		require.Empty(t, b.AvailableMoves())
		require.True(t, b.IsTerminal())
	})
}

func TestBoardCopy(t *testing.T) {
	b := newTestBoard(t, 4)
	require.NoError(t, b.Set(Position{X: 0, Y: 1}, Blue))
	require.NoError(t, b.Set(Position{X: 3, Y: 5}, Red))

	c := b.Copy()

	t.Run("copy preserves every cell", func(t *testing.T) {
		b.each(func(p Position) {
			require.Equal(t, b.MustCell(p), c.MustCell(p), "Cell %s should match", p)
		})
		require.True(t, b.Equal(c))
		require.Equal(t, b.Neighbors(Position{X: 2, Y: 3}), c.Neighbors(Position{X: 2, Y: 3}))
	})

	t.Run("mutations do not leak between copies", func(t *testing.T) {
		require.NoError(t, c.Set(Position{X: 2, Y: 2}, Red))
		require.Equal(t, Empty, b.MustCell(Position{X: 2, Y: 2}))
		require.NoError(t, b.Set(Position{X: 1, Y: 1}, Blue))
		require.Equal(t, Empty, c.MustCell(Position{X: 1, Y: 1}))
		require.False(t, b.Equal(c))
	})
}

func TestBoardClearAndEqual(t *testing.T) {
	b := newTestBoard(t, 3)
	require.NoError(t, b.Set(Position{X: 1, Y: 2}, Blue))
	require.Equal(t, 1, b.Count(Blue))

	b.Clear()
	require.Equal(t, 9, b.Count(Empty))
	require.Len(t, b.AvailableMoves(), 9)

	other := newTestBoard(t, 3)
	require.True(t, b.Equal(other))
	require.False(t, b.Equal(newTestBoard(t, 4)))
	require.False(t, b.Equal(nil))
}

func TestBoardString(t *testing.T) {
	b := newTestBoard(t, 2)
	require.NoError(t, b.Set(Position{X: 0, Y: 0}, Blue))
	require.NoError(t, b.Set(Position{X: 1, Y: 2}, Red))
	require.Equal(t, "B . \n . R \n", b.String())
}
