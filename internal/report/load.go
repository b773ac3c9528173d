package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadSummary reads exactly the first line of the report at path and
// parses it as a summary record. The rest of the file is never touched.
func LoadSummary(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("reading report: %w", err)
	}
	defer f.Close()

	line, err := readLine(bufio.NewReader(f))
	if err != nil {
		return Summary{}, fmt.Errorf("reading summary line of %s: %w", path, err)
	}
	var s Summary
	if err := json.Unmarshal(line, &s); err != nil {
		return Summary{}, fmt.Errorf("parsing summary line of %s: %w", path, err)
	}
	if err := s.check(); err != nil {
		return Summary{}, fmt.Errorf("summary line of %s: %w", path, err)
	}
	return s, nil
}

func (s Summary) check() error {
	if s.Total < 0 || s.Correct < 0 || s.SyntaxError < 0 || s.RuntimeException < 0 {
		return fmt.Errorf("negative count (total=%d correct=%d syntax-error=%d runtime-exception=%d)",
			s.Total, s.Correct, s.SyntaxError, s.RuntimeException)
	}
	if n := s.Correct + s.SyntaxError + s.RuntimeException; n > s.Total {
		return fmt.Errorf("outcome counts sum to %d, exceeding total %d", n, s.Total)
	}
	return nil
}

// ExactMatch scans the full report at path and counts per-example records
// whose predicted program text equals the reference program text.
func ExactMatch(path string) (ExactMatchResult, error) {
	var m ExactMatchResult
	err := scanRecords(path, func(rec Record) error {
		m.Total++
		if rec.ExactMatch() {
			m.Exact++
		}
		return nil
	})
	if err != nil {
		return ExactMatchResult{}, err
	}
	return m, nil
}

// Records returns every per-example record of the report at path, in
// file order.
func Records(path string) ([]Record, error) {
	var recs []Record
	err := scanRecords(path, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// scanRecords streams the per-example lines of a report, skipping the
// summary line. Any malformed line aborts the scan.
func scanRecords(path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if _, err := readLine(r); err != nil {
		return fmt.Errorf("reading summary line of %s: %w", path, err)
	}
	for lineNo := 2; ; lineNo++ {
		line, err := readLine(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return fmt.Errorf("parsing %s line %d: %w", path, lineNo, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its trailing newline. Report
// lines carry full example payloads, so no fixed-size line buffer.
func readLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err == io.EOF && len(line) > 0 {
		return line, nil
	}
	if err != nil {
		return nil, err
	}
	return line[:len(line)-1], nil
}

// Write emits a report file in the summary-line-plus-records layout the
// evaluation pipeline produces. Round-trips with LoadSummary and Records.
func Write(path string, summary Summary, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("writing summary line: %w", err)
	}
	for i, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
