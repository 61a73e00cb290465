package metrics

import (
	"time"

	"hex/engine"
	"hex/game"
)

// Matchup is one combination of the experiment sweep.
type Matchup struct {
	GridSize     int
	BudgetBlue   int
	BudgetRed    int
	StrategyBlue string
	StrategyRed  string
	Starter      game.CellState
}

// Summary counts the wins of one matchup.
type Summary struct {
	Matchup
	Games    int
	WinsBlue int
	WinsRed  int
}

func (s Summary) PctBlue() float64 {
	return percent(s.WinsBlue, s.Games)
}

func (s Summary) PctRed() float64 {
	return percent(s.WinsRed, s.Games)
}

func percent(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return 100 * float64(wins) / float64(games)
}

type GameRecord struct {
	ID       int
	Matchup  int // index into the summaries
	Winner   game.CellState
	Moves    int
	Start    time.Time
	Duration time.Duration
}

type MoveRecord struct {
	Game int // GameRecord.ID
	engine.MoveMetric
}

// Setup describes a run. It is written once the run is over.
type Setup struct {
	RunID     string    `json:"run_id"`
	Config    any       `json:"config"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Games     int       `json:"games"`
}
