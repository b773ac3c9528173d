package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Bucket bounds for the trees-searched breakdown, matching the budgets
// the evaluation pipeline sweeps.
var treeBuckets = []int{1, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 65, 70, 75, 80, 85, 90, 95, 100}

// BucketRow is one line of the trees-searched breakdown: how many
// examples were solved within the first Trees candidate trees. Total is
// the full example count, not the bucket population, so accuracy reads
// as "fraction of the run solved by this search depth".
type BucketRow struct {
	Trees    int     `json:"trees"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// AccuracyByTrees buckets correct examples cumulatively by how many
// candidate trees the search examined before settling on its answer. A
// record without search info counts as zero trees.
func AccuracyByTrees(records []Record) []BucketRow {
	rows := make([]BucketRow, len(treeBuckets))
	for i, b := range treeBuckets {
		rows[i] = BucketRow{Trees: b, Total: len(records)}
	}
	for _, rec := range records {
		if !rec.Correct() {
			continue
		}
		trees := 0
		if rec.Code.Info != nil {
			trees = rec.Code.Info.TreesChecked
		}
		for i, b := range treeBuckets {
			if trees <= b {
				rows[i].Correct++
			}
		}
	}
	for i := range rows {
		if rows[i].Total > 0 {
			rows[i].Accuracy = float64(rows[i].Correct) / float64(rows[i].Total)
		}
	}
	return rows
}

// WriteBreakdown renders the trees-searched breakdown.
func WriteBreakdown(rows []BucketRow, format string, w io.Writer) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "latex":
		for _, r := range rows {
			fmt.Fprintf(w, "(%d, %.1f)", r.Trees, r.Accuracy*100)
		}
		fmt.Fprintln(w)
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TREES\tCORRECT\tTOTAL\tACCURACY")
		fmt.Fprintln(tw, strings.Repeat("-", 40))
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%.4f\n", r.Trees, r.Correct, r.Total, r.Accuracy)
		}
		return tw.Flush()
	}
}
