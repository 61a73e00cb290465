package engine

import (
	"time"

	"hex/game"
	"hex/searcher"
)

type Engine interface {
	// Run plays a game until the board is terminal or MaxTurns moves were played
	Run() (Result, error)
}

type MoveMetric struct {
	Step   int
	Player game.CellState
	Move   game.Position
	searcher.SearchMetric
}

type Result struct {
	Winner      game.CellState
	Starter     game.CellState
	Moves       int
	StartTime   time.Time
	Duration    time.Duration
	MoveMetrics []MoveMetric
}
