package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"hex/display"
	"hex/game"
	"hex/searcher"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrNoMove          = errors.New("no move was chosen")
)

// Strategy decides where color plays next. It must not modify board.
type Strategy interface {
	Choose(board *game.Board, color game.CellState) (game.Position, error)
}

// Random plays a uniformly random free cell.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Choose(board *game.Board, color game.CellState) (game.Position, error) {
	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return game.Position{}, ErrNoMove
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// Search delegates to a tree search.
type Search struct {
	searcher searcher.Searcher
}

func NewSearch(s searcher.Searcher) *Search {
	return &Search{searcher: s}
}

func (s *Search) Choose(board *game.Board, color game.CellState) (game.Position, error) {
	return s.searcher.FindBestMove(board, color)
}

func (s *Search) Metrics() searcher.SearchMetric {
	return s.searcher.Metrics()
}

// Human reads "x y" lines and asks again until the cell is free and on the board.
type Human struct {
	in      *bufio.Scanner
	display display.Handler
}

func NewHuman(in io.Reader, h display.Handler) *Human {
	return &Human{in: bufio.NewScanner(in), display: h}
}

func (h *Human) Choose(board *game.Board, color game.CellState) (game.Position, error) {
	for {
		h.display.Message(fmt.Sprintf("Enter x y for %s:", color))
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Position{}, fmt.Errorf("%w: %w", ErrNoMove, err)
			}
			h.display.Error("cancelled, no move was played")
			return game.Position{}, ErrNoMove
		}

		p, err := parsePosition(h.in.Text())
		if err != nil {
			h.display.Error(err.Error())
			continue
		}
		state, err := board.Cell(p)
		if err != nil {
			h.display.Error(fmt.Sprintf("%s is off the board, try again", p))
			continue
		}
		if state != game.Empty {
			h.display.Error(fmt.Sprintf("%s is already taken, try again", p))
			continue
		}
		return p, nil
	}
}

func parsePosition(line string) (game.Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Position{}, errors.New("enter two integers: x y")
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return game.Position{}, fmt.Errorf("invalid coordinates %q", line)
	}
	return game.Position{X: x, Y: y}, nil
}
