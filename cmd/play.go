package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"hex/display"
	"hex/engine"
	"hex/game"
	"hex/meta"
	"hex/player"
	"hex/searcher"
)

type playOptions struct {
	size        int
	blue        string
	red         string
	budgetBlue  int
	budgetRed   int
	start       string
	seed        uint64
	diagnostics bool
	quiet       bool
}

func newPlayCmd() *cobra.Command {
	opts := playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game",
		Example: `  hex play --blue human --red rave --budget-red 2000
  hex play --size 7 --blue mcts --red rave --seed 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	kinds := fmt.Sprint(player.Kinds())
	flags := cmd.Flags()
	flags.IntVar(&opts.size, "size", meta.GridSize, "board side length")
	flags.StringVar(&opts.blue, "blue", player.KindHuman, "blue player "+kinds)
	flags.StringVar(&opts.red, "red", player.KindMCTS, "red player "+kinds)
	flags.IntVar(&opts.budgetBlue, "budget-blue", meta.IterationBudget, "search iterations per move for blue")
	flags.IntVar(&opts.budgetRed, "budget-red", meta.IterationBudget, "search iterations per move for red")
	flags.StringVar(&opts.start, "start", "blue", "starting player (blue or red)")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flags.BoolVar(&opts.diagnostics, "diagnostics", false, "log search candidates and timings")
	flags.BoolVar(&opts.quiet, "quiet", false, "only print the result")
	return cmd
}

func runPlay(cmd *cobra.Command, opts playOptions) error {
	starter, err := game.ParseCellState(opts.start)
	if err != nil || starter == game.Empty {
		return fmt.Errorf("invalid starting player %q", opts.start)
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var h display.Handler = display.NewConsole(cmd.OutOrStdout())
	if opts.quiet {
		h = display.Quiet{}
	}

	options := []player.Option{
		player.WithRand(rand.New(rand.NewSource(seed))),
		player.WithInput(cmd.InOrStdin()),
		player.WithDisplay(h),
		player.WithSearchOptions(searcher.WithMetrics()),
	}
	if opts.diagnostics {
		options = append(options, player.WithSearchOptions(searcher.WithDiagnostics()))
	}

	blue, err := player.New("blue", game.Blue, opts.blue, opts.budgetBlue, options...)
	if err != nil {
		return err
	}
	red, err := player.New("red", game.Red, opts.red, opts.budgetRed, options...)
	if err != nil {
		return err
	}

	e, err := engine.LocalEngine(opts.size, blue, red, starter, h)
	if err != nil {
		return err
	}
	result, err := e.Run()
	if err != nil {
		return err
	}
	if opts.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s wins in %d moves\n", result.Winner, result.Moves)
	}
	return nil
}
