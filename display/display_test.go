package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hex/game"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	t.Run("message", func(t *testing.T) {
		buf.Reset()
		c.Message("BLUE played (0, 1)")
		require.Equal(t, "BLUE played (0, 1)\n", buf.String())
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		c.Error("cell is taken")
		require.Contains(t, buf.String(), "error: cell is taken")
	})

	t.Run("board", func(t *testing.T) {
		buf.Reset()
		b, err := game.NewBoard(3)
		require.NoError(t, err)
		require.NoError(t, b.Set(game.Position{X: 0, Y: 1}, game.Blue))
		require.NoError(t, b.Set(game.Position{X: 2, Y: 4}, game.Red))

		c.Board(b)
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		require.Contains(t, lines[0], "B")
		require.Contains(t, lines[2], "R")
		require.True(t, strings.HasPrefix(lines[1], "  1 "), "Rows should be shifted: %q", lines[1])
	})

	t.Run("result", func(t *testing.T) {
		buf.Reset()
		c.Result("RED wins")
		require.Contains(t, buf.String(), "RED wins")
		require.Greater(t, strings.Count(buf.String(), "\n"), 1, "Result should be boxed")
	})
}

func TestQuiet(t *testing.T) {
	var h Handler = Quiet{}
	require.NotPanics(t, func() {
		h.Message("x")
		h.Error("x")
		h.Board(nil)
		h.Result("x")
	})
}
