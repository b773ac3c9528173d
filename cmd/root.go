package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "evalreport",
		Short: "Summary statistics for program-synthesis evaluation runs",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "evalreport.yaml", "config file path")
	root.AddCommand(newSummarizeCmd())
	root.AddCommand(newBaselinesCmd())
	root.AddCommand(newErrorsCmd())
	root.AddCommand(newBreakdownCmd())
	root.AddCommand(newListCmd())
	return root
}
