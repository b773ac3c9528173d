package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/synthbench/evalreport/internal/config"
	"github.com/synthbench/evalreport/internal/report"
)

func newBreakdownCmd() *cobra.Command {
	var flagFormat string

	cmd := &cobra.Command{
		Use:   "breakdown NAME",
		Short: "Accuracy by number of candidate trees searched, for one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			rep, err := cfg.FindReport(args[0])
			if err != nil {
				return err
			}
			recs, err := report.Records(rep.Path)
			if err != nil {
				return err
			}
			return report.WriteBreakdown(report.AccuracyByTrees(recs), flagFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, json, latex)")
	return cmd
}
