package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/synthbench/evalreport/internal/config"
	"github.com/synthbench/evalreport/internal/report"
)

func newErrorsCmd() *cobra.Command {
	var flagSample int
	var flagSeed int64

	cmd := &cobra.Command{
		Use:   "errors NAME",
		Short: "Show a random sample of failing examples from one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagSample < 0 {
				return fmt.Errorf("--sample must be non-negative, got %d", flagSample)
			}
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

			var failed []int
			for i, rec := range recs {
				if !rec.Correct() {
					failed = append(failed, i)
				}
			}
			fmt.Printf("%s: %d of %d examples failed\n", rep.Name, len(failed), len(recs))

			seed := flagSeed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			rng.Shuffle(len(failed), func(i, j int) {
				failed[i], failed[j] = failed[j], failed[i]
			})
			if len(failed) > flagSample {
				failed = failed[:flagSample]
			}
			for _, idx := range failed {
				printFailure(os.Stdout, idx, recs[idx])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&flagSample, "sample", 5, "number of failing examples to show")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "sampling seed (0 picks one from the clock)")
	return cmd
}

func printFailure(w io.Writer, idx int, rec report.Record) {
	fmt.Fprintf(w, "\n=== Example #%d ===\n", idx)
	if len(rec.Example.Text) > 0 {
		fmt.Fprintf(w, "Text:  %s\n", strings.Join(rec.Example.Text, " "))
	}
	fmt.Fprintf(w, "Gold:  %s\n", rec.Example.Program())
	fmt.Fprintf(w, "Res:   %s\n", rec.Code.Program())
	if rec.Code.Info != nil && rec.Code.Info.TreesChecked > 0 {
		fmt.Fprintf(w, "Trees: %d\n", rec.Code.Info.TreesChecked)
	}
	if rec.Code.Info != nil && len(rec.Code.Info.Candidates) > 0 {
		fmt.Fprintf(w, "Cands: %s\n", strings.Join(rec.Code.Info.Candidates, " | "))
	}
	fmt.Fprintf(w, "Stats: total=%d correct=%d syntax-error=%d runtime-exception=%d\n",
		rec.Stats.Total, rec.Stats.Correct, rec.Stats.SyntaxError, rec.Stats.RuntimeException)
}
