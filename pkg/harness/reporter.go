package harness

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/muesli/termenv"
)

// Reporter receives outcomes as the harness produces them.
// Calls for one problem arrive in order: Start, Case for each case, Finish.
type Reporter interface {
	Start(problem string) error
	Case(problem string, result domain.CaseResult) error
	Finish(report *domain.Report) error
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Start(string) error { return nil }
func (NopReporter) Case(string, domain.CaseResult) error { return nil }
func (NopReporter) Finish(*domain.Report) error { return nil }

// TextReporter writes one human-readable line per case.
type TextReporter struct {
	mu  sync.Mutex
	out *termenv.Output
}

// TextReporterOption configures a TextReporter.
type TextReporterOption func(*textConfig)

type textConfig struct {
	color bool
}

// WithColor forces colors on or off. By default the terminal decides.
func WithColor(enabled bool) TextReporterOption {
	return func(c *textConfig) {
		c.color = enabled
	}
}

// NewTextReporter creates a reporter writing to w (os.Stdout if nil).
func NewTextReporter(w io.Writer, opts ...TextReporterOption) *TextReporter {
	if w == nil {
		w = os.Stdout
	}
	cfg := textConfig{color: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	var out *termenv.Output
	if cfg.color {
		out = termenv.NewOutput(w)
	} else {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return &TextReporter{out: out}
}

func (r *TextReporter) Start(problem string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.out, "Running %s\n", r.out.String(problem).Bold())
	return err
}

func (r *TextReporter) Case(problem string, c domain.CaseResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	switch c.Outcome {
	case domain.OutcomePass:
		_, err = fmt.Fprintf(r.out, "Test %d %s\n", c.Index,
			r.out.String("succeeded").Foreground(r.out.Color("#22c55e")))
	case domain.OutcomeMismatch:
		_, err = fmt.Fprintf(r.out, "Test %d %s: Expected: %s; Actual: %s\n", c.Index,
			r.out.String("failed").Foreground(r.out.Color("#ef4444")), c.Expected, c.Actual)
	default:
		_, err = fmt.Fprintf(r.out, "Test %d %s: Expected: %s; Error: %s\n", c.Index,
			r.out.String("failed").Foreground(r.out.Color("#ef4444")), c.Expected, c.Error)
	}
	return err
}

func (r *TextReporter) Finish(report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.out, "%d passed, %d failed\n\n", report.Passed, report.Failed)
	return err
}

// JSONEvent is one line of JSONReporter output.
type JSONEvent struct {
	Event   string             `json:"event"` // "start", "case" or "finish"
	Problem string             `json:"problem"`
	Case    *domain.CaseResult `json:"case,omitempty"`
	Passed  *int               `json:"passed,omitempty"`
	Failed  *int               `json:"failed,omitempty"`
}

// JSONReporter writes newline-delimited JSON events.
type JSONReporter struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

// NewJSONReporter creates a reporter writing to w (os.Stdout if nil).
func NewJSONReporter(w io.Writer) *JSONReporter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONReporter{encoder: json.NewEncoder(w)}
}

func (r *JSONReporter) emit(ev JSONEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.encoder.Encode(ev)
}

func (r *JSONReporter) Start(problem string) error {
	return r.emit(JSONEvent{Event: "start", Problem: problem})
}

func (r *JSONReporter) Case(problem string, c domain.CaseResult) error {
	return r.emit(JSONEvent{Event: "case", Problem: problem, Case: &c})
}

func (r *JSONReporter) Finish(report *domain.Report) error {
	return r.emit(JSONEvent{
		Event:   "finish",
		Problem: report.Problem,
		Passed:  &report.Passed,
		Failed:  &report.Failed,
	})
}
