package report

import "strings"

// Summary is the first line of a report file: aggregate outcome counts
// for one evaluation run.
type Summary struct {
	Total            int  `json:"total"`
	Correct          int  `json:"correct"`
	SyntaxError      int  `json:"syntax-error"`
	RuntimeException int  `json:"runtime-exception"`
	Done             bool `json:"done"`
}

// Accuracy returns correct/total, or 0 for an empty run.
func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Record is one per-example line of a report file.
type Record struct {
	Stats   Stats      `json:"stats"`
	Example Example    `json:"example"`
	Code    Prediction `json:"code"`
}

// Stats holds per-example test outcomes. An example is fully correct
// when every test passed.
type Stats struct {
	Total            int `json:"total"`
	Correct          int `json:"correct"`
	SyntaxError      int `json:"syntax-error"`
	RuntimeException int `json:"runtime-exception"`
}

type Example struct {
	Text         []string `json:"text,omitempty"`
	CodeSequence []string `json:"code_sequence"`
}

type Prediction struct {
	CodeSequence []string `json:"code_sequence"`
	Info         *Info    `json:"info,omitempty"`
}

type Info struct {
	TreesChecked int      `json:"trees_checked,omitempty"`
	Candidates   []string `json:"candidates,omitempty"`
}

// Correct reports whether the prediction passed all of the example's tests.
func (r Record) Correct() bool {
	return r.Stats.Correct == r.Stats.Total
}

// ExactMatch reports whether the predicted program is textually identical
// to the reference program.
func (r Record) ExactMatch() bool {
	return r.Code.Program() == r.Example.Program()
}

func (e Example) Program() string {
	return strings.Join(e.CodeSequence, " ")
}

func (p Prediction) Program() string {
	return strings.Join(p.CodeSequence, " ")
}

// ExactMatchResult counts predictions textually identical to the
// reference program across a full report.
type ExactMatchResult struct {
	Exact int `json:"exact"`
	Total int `json:"total"`
}

// Rate returns exact/total, or 0 for an empty report.
func (m ExactMatchResult) Rate() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Exact) / float64(m.Total)
}
