package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/synthbench/evalreport/internal/config"
)

// Row pairs one configured report's summary with its exact-match result
// and the derived ratios.
type Row struct {
	Name      string           `json:"name"`
	Summary   Summary          `json:"summary"`
	Accuracy  float64          `json:"accuracy"`
	Exact     ExactMatchResult `json:"exact_match"`
	ExactRate float64          `json:"exact_match_rate"`
}

// Generate reads every report in order and renders the comparison.
// Any unreadable or malformed report aborts the whole run.
func Generate(reports []config.Report, format string, w io.Writer) error {
	rows, err := collectRows(reports)
	if err != nil {
		return err
	}

	switch format {
	case "markdown":
		return writeMarkdown(rows, w)
	case "json":
		return writeJSON(rows, w)
	default:
		return writeTable(rows, w)
	}
}

func collectRows(reports []config.Report) ([]Row, error) {
	var rows []Row
	for _, r := range reports {
		summary, err := LoadSummary(r.Path)
		if err != nil {
			return nil, fmt.Errorf("report %q: %w", r.Name, err)
		}
		exact, err := ExactMatch(r.Path)
		if err != nil {
			return nil, fmt.Errorf("report %q: %w", r.Name, err)
		}
		if exact.Total != summary.Total {
			return nil, fmt.Errorf("report %q: %d records but summary total is %d",
				r.Name, exact.Total, summary.Total)
		}
		rows = append(rows, Row{
			Name:      r.Name,
			Summary:   summary,
			Accuracy:  summary.Accuracy(),
			Exact:     exact,
			ExactRate: exact.Rate(),
		})
	}
	return rows, nil
}

func writeTable(rows []Row, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REPORT\tTOTAL\tCORRECT\tACCURACY\tSYNTAX ERR\tRUNTIME EXC\tEXACT\tEXACT RATE\tDONE")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.4f\t%d\t%d\t%d\t%.4f\t%v\n",
			r.Name, r.Summary.Total, r.Summary.Correct, r.Accuracy,
			r.Summary.SyntaxError, r.Summary.RuntimeException,
			r.Exact.Exact, r.ExactRate, r.Summary.Done)
	}
	return tw.Flush()
}

func writeMarkdown(rows []Row, w io.Writer) error {
	fmt.Fprintln(w, "| Report | Total | Correct | Accuracy | Syntax Err | Runtime Exc | Exact | Exact Rate | Done |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|---|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %s | %d | %d | %.4f | %d | %d | %d | %.4f | %v |\n",
			r.Name, r.Summary.Total, r.Summary.Correct, r.Accuracy,
			r.Summary.SyntaxError, r.Summary.RuntimeException,
			r.Exact.Exact, r.ExactRate, r.Summary.Done)
	}
	return nil
}

func writeJSON(rows []Row, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
