package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/synthbench/evalreport/internal/config"
	"github.com/synthbench/evalreport/internal/report"
)

func newSummarizeCmd() *cobra.Command {
	var flagFormat string
	var flagReport string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Compare summary statistics across configured reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			reports := filterReports(cfg.Reports, flagReport)
			if len(reports) == 0 {
				return fmt.Errorf("no configured report matches %q", flagReport)
			}
			return report.Generate(reports, flagFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	cmd.Flags().StringVar(&flagReport, "report", "", "only summarize the named report")
	return cmd
}

func filterReports(reports []config.Report, name string) []config.Report {
	if name == "" {
		return reports
	}
	var out []config.Report
	for _, r := range reports {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out
}
