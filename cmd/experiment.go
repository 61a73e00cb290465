package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hex/experiments"
)

func newExperimentCmd() *cobra.Command {
	var configPath, out string
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run an experiment sweep from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := experiments.LoadConfig(configPath)
			if err != nil {
				return err
			}
			report, err := experiments.NewRunner(cfg, out).Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "results written to %s\n", report.Dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "experiment.yaml", "sweep configuration file")
	cmd.Flags().StringVar(&out, "out", "results", "directory for the run output")
	return cmd
}
