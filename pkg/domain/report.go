package domain

import "time"

// CaseOutcome classifies the result of a single case.
type CaseOutcome string

const (
	OutcomePass     CaseOutcome = "pass"     // Final tape matched
	OutcomeMismatch CaseOutcome = "mismatch" // Machine halted on a different tape
	OutcomeError    CaseOutcome = "error"    // Run aborted (undefined rule, bounds, budget)
)

// CaseResult is the outcome of running one (input, expected) pair.
type CaseResult struct {
	// Index is 1-based, matching the order cases were declared in.
	Index    int         `json:"index"`
	Input    string      `json:"input"`
	Expected string      `json:"expected"`
	Actual   string      `json:"actual"`
	Steps    int         `json:"steps"`
	Outcome  CaseOutcome `json:"outcome"`
	Error    string      `json:"error,omitempty"`
}

// Passed reports whether the case succeeded.
func (c CaseResult) Passed() bool {
	return c.Outcome == OutcomePass
}

// Report summarizes one problem run.
type Report struct {
	Problem   string        `json:"problem"`
	Cases     []CaseResult  `json:"cases"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}
