package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hex/game"
)

const sampleConfig = `
grid_sizes: [3, 4]
budgets_blue: [20]
budgets_red: [20, 30]
starting_players: [blue, red]
strategies: [random, mcts]
games: 2
seed: 7
concurrency: 4
`

func TestParseConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(sampleConfig))
		require.NoError(t, err)
		require.Equal(t, []int{3, 4}, cfg.GridSizes)
		require.Equal(t, []string{"random", "mcts"}, cfg.Strategies)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, []game.CellState{game.Blue, game.Red}, cfg.starters())
	})

	invalid := map[string]string{
		"malformed yaml":   "grid_sizes: [3",
		"no grid sizes":    "budgets_blue: [5]\nbudgets_red: [5]\nstarting_players: [blue]\nstrategies: [mcts]\ngames: 1",
		"zero grid size":   "grid_sizes: [0]\nbudgets_blue: [5]\nbudgets_red: [5]\nstarting_players: [blue]\nstrategies: [mcts]\ngames: 1",
		"unknown strategy": "grid_sizes: [3]\nbudgets_blue: [5]\nbudgets_red: [5]\nstarting_players: [blue]\nstrategies: [human]\ngames: 1",
		"unknown starter":  "grid_sizes: [3]\nbudgets_blue: [5]\nbudgets_red: [5]\nstarting_players: [green]\nstrategies: [mcts]\ngames: 1",
		"no games":         "grid_sizes: [3]\nbudgets_blue: [5]\nbudgets_red: [5]\nstarting_players: [red]\nstrategies: [mcts]\ngames: 0",
		"zero budget":      "grid_sizes: [3]\nbudgets_blue: [0]\nbudgets_red: [5]\nstarting_players: [red]\nstrategies: [mcts]\ngames: 1",
	}
	for name, data := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Games)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRunner(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	t.Run("matchups cover every combination", func(t *testing.T) {
		matchups := NewRunner(cfg, "").Matchups()
		require.Len(t, matchups, 2*1*2*2*2*2)
		require.Equal(t, 3, matchups[0].GridSize)
		require.Equal(t, "random", matchups[0].StrategyBlue)
		require.Equal(t, "mcts", matchups[1].StrategyRed)
	})

	t.Run("plays and stores every game", func(t *testing.T) {
		out := t.TempDir()
		report, err := NewRunner(cfg, out).Run(context.Background())
		require.NoError(t, err)
		require.Len(t, report.Summaries, 32)
		require.Len(t, report.Games, 64)

		for _, s := range report.Summaries {
			require.Equal(t, s.Games, s.WinsBlue+s.WinsRed, "Every game has a winner")
		}
		for i, g := range report.Games {
			require.Equal(t, i+1, g.ID)
			require.NotEqual(t, game.Empty, g.Winner)
		}
		for _, name := range []string{"results.csv", "games.csv", "moves.csv", "setup.json"} {
			require.FileExists(t, filepath.Join(report.Dir, name))
		}
	})

	t.Run("same seed gives the same outcomes", func(t *testing.T) {
		first, err := NewRunner(cfg, t.TempDir()).Run(context.Background())
		require.NoError(t, err)
		second, err := NewRunner(cfg, t.TempDir()).Run(context.Background())
		require.NoError(t, err)
		for i := range first.Games {
			require.Equal(t, first.Games[i].Winner, second.Games[i].Winner)
			require.Equal(t, first.Games[i].Moves, second.Games[i].Moves)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewRunner(cfg, t.TempDir()).Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := NewRunner(&Config{}, t.TempDir()).Run(context.Background())
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
