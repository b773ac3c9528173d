package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/synthbench/evalreport/internal/baseline"
	"github.com/synthbench/evalreport/internal/config"
	"github.com/synthbench/evalreport/internal/dataset"
)

func newBaselinesCmd() *cobra.Command {
	var flagFormat string

	cmd := &cobra.Command{
		Use:   "baselines",
		Short: "Budget ablation: baseline agreement with the validation set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if len(cfg.Baselines) == 0 {
				return fmt.Errorf("no baselines defined in config")
			}
			examples, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.Encoding)
			if err != nil {
				return err
			}
			return baseline.Sweep(cfg.Baselines, examples, flagFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json, latex)")
	return cmd
}
