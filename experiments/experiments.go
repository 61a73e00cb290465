package experiments

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"hex/display"
	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/player"
	"hex/searcher"
)

// Report is what a run produced.
type Report struct {
	Dir       string
	Summaries []metrics.Summary
	Games     []metrics.GameRecord
}

type Runner struct {
	cfg *Config
	out string
}

// NewRunner returns a runner that writes its results under out.
func NewRunner(cfg *Config, out string) *Runner {
	return &Runner{cfg: cfg, out: out}
}

// Matchups lists every combination of the sweep in a stable order.
func (r *Runner) Matchups() []metrics.Matchup {
	var matchups []metrics.Matchup
	for _, size := range r.cfg.GridSizes {
		for _, budgetBlue := range r.cfg.BudgetsBlue {
			for _, budgetRed := range r.cfg.BudgetsRed {
				for _, starter := range r.cfg.starters() {
					for _, blue := range r.cfg.Strategies {
						for _, red := range r.cfg.Strategies {
							matchups = append(matchups, metrics.Matchup{
								GridSize:     size,
								BudgetBlue:   budgetBlue,
								BudgetRed:    budgetRed,
								StrategyBlue: blue,
								StrategyRed:  red,
								Starter:      starter,
							})
						}
					}
				}
			}
		}
	}
	return matchups
}

// Run plays every game of the sweep, independent games in parallel, and writes
// the results once all of them are done.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	matchups := r.Matchups()
	total := len(matchups) * r.cfg.Games
	log.Info().Msgf("starting experiment with %d matchups and %d games...", len(matchups), total)

	games := make([]metrics.GameRecord, total)
	moves := make([][]metrics.MoveRecord, total)

	g, ctx := errgroup.WithContext(ctx)
	limit := r.cfg.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g.SetLimit(limit)

	for mi, m := range matchups {
		for i := 0; i < r.cfg.Games; i++ {
			mi, m, i := mi, m, i
			id := mi*r.cfg.Games + i
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := playGame(m, r.cfg.Seed+uint64(id))
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}

				games[id] = metrics.GameRecord{
					ID:       id + 1,
					Matchup:  mi,
					Winner:   result.Winner,
					Moves:    result.Moves,
					Start:    result.StartTime,
					Duration: result.Duration,
				}
				for _, mm := range result.MoveMetrics {
					moves[id] = append(moves[id], metrics.MoveRecord{Game: id + 1, MoveMetric: mm})
				}
				log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchups), i+1, result.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := summarize(matchups, games, r.cfg.Games)
	for _, s := range summaries {
		log.Info().Msgf("size=%d %s(%d) vs %s(%d) start=%s: blue %d (%.2f%%) red %d (%.2f%%)",
			s.GridSize, s.StrategyBlue, s.BudgetBlue, s.StrategyRed, s.BudgetRed, s.Starter,
			s.WinsBlue, s.PctBlue(), s.WinsRed, s.PctRed())
	}

	dir, err := r.write(start, summaries, games, moves)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("completed experiment, results stored in %s", dir)

	return &Report{Dir: dir, Summaries: summaries, Games: games}, nil
}

func summarize(matchups []metrics.Matchup, games []metrics.GameRecord, perMatchup int) []metrics.Summary {
	summaries := make([]metrics.Summary, len(matchups))
	for i, m := range matchups {
		summaries[i] = metrics.Summary{Matchup: m, Games: perMatchup}
	}
	for _, record := range games {
		switch record.Winner {
		case game.Blue:
			summaries[record.Matchup].WinsBlue++
		case game.Red:
			summaries[record.Matchup].WinsRed++
		}
	}
	return summaries
}

func (r *Runner) write(start time.Time, summaries []metrics.Summary, games []metrics.GameRecord, moves [][]metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(r.out)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSummaries(summaries)
	if err != nil {
		return "", fmt.Errorf("failed to store results: %w", err)
	}
	err = writer.WriteGameRecords(games)
	if err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}

	var flat []metrics.MoveRecord
	for _, m := range moves {
		flat = append(flat, m...)
	}
	err = writer.WriteMoveRecords(flat)
	if err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}

	err = writer.WriteSetup(metrics.Setup{
		Config:    r.cfg,
		StartTime: start,
		EndTime:   time.Now(),
		Games:     len(games),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	return writer.Dir(), nil
}

// playGame runs one quiet game. Each game owns its random source, so games
// can run on separate goroutines.
func playGame(m metrics.Matchup, seed uint64) (engine.Result, error) {
	rng := rand.New(rand.NewSource(seed))
	blue, err := player.New("blue", game.Blue, m.StrategyBlue, m.BudgetBlue,
		player.WithRand(rng), player.WithSearchOptions(searcher.WithMetrics()))
	if err != nil {
		return engine.Result{}, err
	}
	red, err := player.New("red", game.Red, m.StrategyRed, m.BudgetRed,
		player.WithRand(rng), player.WithSearchOptions(searcher.WithMetrics()))
	if err != nil {
		return engine.Result{}, err
	}

	e, err := engine.LocalEngine(m.GridSize, blue, red, m.Starter, display.Quiet{})
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run()
}
