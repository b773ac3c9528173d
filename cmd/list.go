package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/synthbench/evalreport/internal/config"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured reports, dataset, and baselines",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Println("Reports:")
			for _, r := range cfg.Reports {
				fmt.Printf("  - %s (%s)\n", r.Name, r.Path)
			}
			if cfg.Dataset.Path != "" {
				fmt.Printf("\nValidation set: %s (encoding: %s)\n", cfg.Dataset.Path, cfg.Dataset.Encoding)
			}
			if len(cfg.Baselines) > 0 {
				fmt.Println("\nBaselines:")
				for _, b := range cfg.Baselines {
					fmt.Printf("  - budget %d (%s)\n", b.Budget, b.Path)
				}
			}
			return nil
		},
	}
}
