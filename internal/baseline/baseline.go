// Package baseline compares baseline prediction files against the
// validation set, one file per search-budget value.
package baseline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/synthbench/evalreport/internal/config"
	"github.com/synthbench/evalreport/internal/dataset"
)

// Prediction is one element of a baseline result file: the predicted
// program text and the baseline's own correctness judgment.
type Prediction struct {
	Output    string `json:"output"`
	IsCorrect bool   `json:"is_correct"`
}

// Load parses a baseline result file: a single JSON document whose top
// level is an array of prediction records.
func Load(path string) ([]Prediction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading baseline: %w", err)
	}
	var preds []Prediction
	if err := json.Unmarshal(data, &preds); err != nil {
		return nil, fmt.Errorf("parsing baseline %s: %w", path, err)
	}
	return preds, nil
}

// Agreement counts, over one baseline run, predictions textually equal to
// the reference program (Exact) and predictions the baseline itself
// judged correct (Correct). The two routinely diverge: exact text match
// is a different, stricter criterion than executed correctness.
type Agreement struct {
	Exact   int `json:"exact"`
	Correct int `json:"correct"`
}

// Agree aligns predictions positionally with the validation set. The two
// sequences must have equal length; a mismatch means the files do not
// describe the same run and is an error, never silently truncated.
func Agree(examples []dataset.Example, preds []Prediction) (Agreement, error) {
	if len(examples) != len(preds) {
		return Agreement{}, fmt.Errorf("baseline has %d predictions but validation set has %d examples",
			len(preds), len(examples))
	}
	var a Agreement
	for i, p := range preds {
		if p.Output == examples[i].Code {
			a.Exact++
		}
		if p.IsCorrect {
			a.Correct++
		}
	}
	return a, nil
}

// Row is one line of the budget ablation: agreement counts and ratios
// for a single budget value.
type Row struct {
	Budget      int     `json:"budget"`
	Total       int     `json:"total"`
	Exact       int     `json:"exact"`
	ExactRate   float64 `json:"exact_rate"`
	Correct     int     `json:"correct"`
	CorrectRate float64 `json:"correct_rate"`
}

// Sweep loads every configured baseline run in order, compares it against
// the validation set, and renders the ablation table.
func Sweep(runs []config.BaselineRun, examples []dataset.Example, format string, w io.Writer) error {
	rows, err := collectRows(runs, examples)
	if err != nil {
		return err
	}

	switch format {
	case "markdown":
		return writeMarkdown(rows, w)
	case "json":
		return writeJSON(rows, w)
	case "latex":
		return writeLatex(rows, w)
	default:
		return writeTable(rows, w)
	}
}

func collectRows(runs []config.BaselineRun, examples []dataset.Example) ([]Row, error) {
	var rows []Row
	for _, run := range runs {
		preds, err := Load(run.Path)
		if err != nil {
			return nil, fmt.Errorf("baseline budget %d: %w", run.Budget, err)
		}
		agr, err := Agree(examples, preds)
		if err != nil {
			return nil, fmt.Errorf("baseline budget %d: %w", run.Budget, err)
		}
		rows = append(rows, Row{
			Budget:      run.Budget,
			Total:       len(examples),
			Exact:       agr.Exact,
			ExactRate:   rate(agr.Exact, len(examples)),
			Correct:     agr.Correct,
			CorrectRate: rate(agr.Correct, len(examples)),
		})
	}
	return rows, nil
}

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func writeTable(rows []Row, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BUDGET\tTOTAL\tEXACT\tEXACT RATE\tCORRECT\tCORRECT RATE")
	fmt.Fprintln(tw, strings.Repeat("-", 60))
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.4f\t%d\t%.4f\n",
			r.Budget, r.Total, r.Exact, r.ExactRate, r.Correct, r.CorrectRate)
	}
	return tw.Flush()
}

func writeMarkdown(rows []Row, w io.Writer) error {
	fmt.Fprintln(w, "| Budget | Total | Exact | Exact Rate | Correct | Correct Rate |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %d | %d | %d | %.4f | %d | %.4f |\n",
			r.Budget, r.Total, r.Exact, r.ExactRate, r.Correct, r.CorrectRate)
	}
	return nil
}

func writeJSON(rows []Row, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// writeLatex emits pgfplots coordinate lists, percentages to one decimal,
// one line per metric.
func writeLatex(rows []Row, w io.Writer) error {
	fmt.Fprintln(w, "% exact match")
	for _, r := range rows {
		fmt.Fprintf(w, "(%d, %.1f)", r.Budget, r.ExactRate*100)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "% correct")
	for _, r := range rows {
		fmt.Fprintf(w, "(%d, %.1f)", r.Budget, r.CorrectRate*100)
	}
	fmt.Fprintln(w)
	return nil
}
