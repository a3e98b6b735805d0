package harness

import (
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// DefaultWorkers is the default number of cases run concurrently.
const DefaultWorkers = 4

// Option defines a functional option for configuring the Harness.
type Option func(*Harness)

// WithWorkers bounds how many cases run at once.
func WithWorkers(n int) Option {
	return func(h *Harness) {
		if n > 0 {
			h.workers = n
		}
	}
}

// WithReporter configures where case outcomes are written.
func WithReporter(r Reporter) Option {
	return func(h *Harness) {
		h.reporter = r
	}
}

// WithStore saves every report after its problem finishes.
func WithStore(store ports.ReportStore) Option {
	return func(h *Harness) {
		h.store = store
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithMaxSteps bounds each run, so a looping table cannot stall the suite.
func WithMaxSteps(n int) Option {
	return func(h *Harness) {
		h.maxSteps = n
	}
}

// WithLifecycleHooks attaches engine hooks to every machine the harness builds.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(h *Harness) {
		h.hooks = hooks
	}
}
