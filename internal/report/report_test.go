package report_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/synthbench/evalreport/internal/config"
	"github.com/synthbench/evalreport/internal/report"
)

func writeFixture(t *testing.T, summary report.Summary, records []report.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	if err := report.Write(path, summary, records); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return path
}

func record(gold, predicted string, correct bool) report.Record {
	stats := report.Stats{Total: 5, Correct: 5}
	if !correct {
		stats.Correct = 2
	}
	return report.Record{
		Stats:   stats,
		Example: report.Example{Text: []string{"move", "twice"}, CodeSequence: strings.Fields(gold)},
		Code:    report.Prediction{CodeSequence: strings.Fields(predicted)},
	}
}

func TestLoadSummary(t *testing.T) {
	summary := report.Summary{Total: 443, Correct: 134, SyntaxError: 0, RuntimeException: 16, Done: true}
	path := writeFixture(t, summary, nil)

	got, err := report.LoadSummary(path)
	if err != nil {
		t.Fatalf("LoadSummary: %v", err)
	}
	if got != summary {
		t.Errorf("got %+v, want %+v", got, summary)
	}
	if clean := got.Total - got.RuntimeException - got.SyntaxError; clean != 427 {
		t.Errorf("clean examples: got %d, want 427", clean)
	}

	// Repeated reads of the same file are invariant.
	again, err := report.LoadSummary(path)
	if err != nil {
		t.Fatalf("LoadSummary (second read): %v", err)
	}
	if again != got {
		t.Errorf("second read differs: %+v vs %+v", again, got)
	}
}

func TestLoadSummaryIgnoresRecordLines(t *testing.T) {
	summary := report.Summary{Total: 2, Correct: 1}
	path := writeFixture(t, summary, []report.Record{
		record("move", "move", true),
		record("move", "turnLeft", false),
	})
	got, err := report.LoadSummary(path)
	if err != nil {
		t.Fatalf("LoadSummary: %v", err)
	}
	if got.Total != 2 || got.Correct != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestLoadSummaryRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		first string
	}{
		{"not json", "total: 443"},
		{"empty file", ""},
		{"counts exceed total", `{"total": 10, "correct": 8, "syntax-error": 2, "runtime-exception": 1, "done": true}`},
		{"negative count", `{"total": 10, "correct": -1, "syntax-error": 0, "runtime-exception": 0, "done": true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report.json")
			if err := os.WriteFile(path, []byte(tt.first+"\n"), 0o644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}
			if _, err := report.LoadSummary(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadSummaryMissingFile(t *testing.T) {
	if _, err := report.LoadSummary(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExactMatch(t *testing.T) {
	records := []report.Record{
		record("move turnLeft", "move turnLeft", true),
		record("move move", "move turnLeft", false),
		record("turnRight", "turnRight", false), // textually equal yet judged wrong
	}
	summary := report.Summary{Total: 3, Correct: 1, Done: true}
	path := writeFixture(t, summary, records)

	m, err := report.ExactMatch(path)
	if err != nil {
		t.Fatalf("ExactMatch: %v", err)
	}
	if m.Exact != 2 {
		t.Errorf("exact: got %d, want 2", m.Exact)
	}
	if m.Total != 3 {
		t.Errorf("total: got %d, want 3", m.Total)
	}
	if m.Exact > m.Total {
		t.Errorf("exact %d exceeds total %d", m.Exact, m.Total)
	}

	s, err := report.LoadSummary(path)
	if err != nil {
		t.Fatalf("LoadSummary: %v", err)
	}
	if m.Total != s.Total {
		t.Errorf("exact-match total %d != summary total %d", m.Total, s.Total)
	}
}

func TestExactMatchRejectsMalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	content := `{"total": 1, "correct": 0, "syntax-error": 0, "runtime-exception": 0, "done": true}` + "\nnot json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := report.ExactMatch(path); err == nil {
		t.Error("expected error for malformed record line")
	}
}

func TestRecordsOrderAndRoundTrip(t *testing.T) {
	records := []report.Record{
		record("a", "a", true),
		record("b", "c", false),
		record("d", "d", true),
	}
	path := writeFixture(t, report.Summary{Total: 3, Correct: 2}, records)

	got, err := report.Records(path)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	for i, rec := range got {
		if rec.Example.Program() != records[i].Example.Program() {
			t.Errorf("record %d: got gold %q, want %q", i, rec.Example.Program(), records[i].Example.Program())
		}
	}
	if got[1].Correct() {
		t.Error("record 1 should be incorrect")
	}
	if !got[2].ExactMatch() {
		t.Error("record 2 should be an exact match")
	}
}

func TestGenerateTable(t *testing.T) {
	pathA := writeFixture(t, report.Summary{Total: 2, Correct: 1, Done: true}, []report.Record{
		record("move", "move", true),
		record("move", "turnLeft", false),
	})
	pathB := writeFixture(t, report.Summary{Total: 1, Correct: 0, RuntimeException: 1}, []report.Record{
		record("move", "pickMarker", false),
	})
	reports := []config.Report{
		{Name: "b32s25", Path: pathA},
		{Name: "b64s25", Path: pathB},
	}

	for _, format := range []string{"table", "markdown", "json"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := report.Generate(reports, format, &buf); err != nil {
				t.Fatalf("Generate: %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, "b32s25") || !strings.Contains(out, "b64s25") {
				t.Errorf("expected both report names in output:\n%s", out)
			}
		})
	}
}

func TestGenerateRejectsTotalMismatch(t *testing.T) {
	// Summary claims 5 examples, file carries 1.
	path := writeFixture(t, report.Summary{Total: 5, Correct: 1}, []report.Record{
		record("move", "move", true),
	})
	var buf bytes.Buffer
	err := report.Generate([]config.Report{{Name: "short", Path: path}}, "table", &buf)
	if err == nil {
		t.Error("expected error for record/summary total mismatch")
	}
}

func TestGenerateAbortsOnMissingReport(t *testing.T) {
	good := writeFixture(t, report.Summary{Total: 0}, nil)
	reports := []config.Report{
		{Name: "good", Path: good},
		{Name: "gone", Path: filepath.Join(t.TempDir(), "gone.json")},
	}
	var buf bytes.Buffer
	if err := report.Generate(reports, "table", &buf); err == nil {
		t.Error("expected error when any report is missing")
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		summary report.Summary
		want    float64
	}{
		{report.Summary{Total: 443, Correct: 134}, 134.0 / 443.0},
		{report.Summary{Total: 0, Correct: 0}, 0},
		{report.Summary{Total: 10, Correct: 10}, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.summary.Correct, tt.summary.Total), func(t *testing.T) {
			if got := tt.summary.Accuracy(); got != tt.want {
				t.Errorf("Accuracy() = %f, want %f", got, tt.want)
			}
		})
	}
}
