package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hex/display"
	"hex/game"
	"hex/meta"
	"hex/player"
	"hex/utils"
)

type Local struct {
	Board   *game.Board
	Players []*player.Player
	Starter game.CellState
	Display display.Handler
}

// LocalEngine sets up a game between blue and red on a fresh board.
func LocalEngine(size int, blue, red *player.Player, starter game.CellState, h display.Handler) (*Local, error) {
	if blue == nil || red == nil {
		return nil, errors.New("both players are required")
	}
	if blue.Color != game.Blue || red.Color != game.Red {
		return nil, fmt.Errorf("players must be blue and red, got %s and %s", blue.Color, red.Color)
	}
	if starter != game.Blue && starter != game.Red {
		return nil, fmt.Errorf("starting player must be blue or red, got %s", starter)
	}
	board, err := game.NewBoard(size)
	if err != nil {
		return nil, err
	}
	if h == nil {
		h = display.Quiet{}
	}
	return &Local{
		Board:   board,
		Players: []*player.Player{blue, red},
		Starter: starter,
		Display: h,
	}, nil
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run() (Result, error) {
	colors := make([]game.CellState, len(e.Players))
	for i, p := range e.Players {
		colors[i] = p.Color
	}

	result := Result{Starter: e.Starter, StartTime: time.Now()}
	log.Debug().Msgf("%s is starting on a board of size %d", e.Starter, e.Board.Size())
	e.Display.Board(e.Board)

	current := e.Starter
	for !e.Board.IsTerminal() && result.Moves < meta.MaxTurns {
		p := e.Players[utils.FindIndex(colors, current)]

		move, err := p.Play(e.Board)
		if err != nil {
			return result, err
		}
		result.Moves++

		metric, _ := p.Metrics()
		result.MoveMetrics = append(result.MoveMetrics, MoveMetric{
			Step:         result.Moves,
			Player:       current,
			Move:         move,
			SearchMetric: metric,
		})

		e.Display.Message(fmt.Sprintf("%s played %s", p.Name, move))
		e.Display.Board(e.Board)
		current = utils.Next(colors, current)
	}

	result.Winner = e.Board.Winner()
	result.Duration = time.Since(result.StartTime)
	if result.Winner == game.Empty {
		log.Warn().Msgf("stopped after %d moves without a winner", result.Moves)
	} else {
		e.Display.Result(fmt.Sprintf("%s wins in %d moves", result.Winner, result.Moves))
	}
	return result, nil
}
