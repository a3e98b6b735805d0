package observability

import (
	"context"
	"errors"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of tm_runs_total.
const (
	OutcomeHalted      = "halted"
	OutcomeUndefined   = "undefined_transition"
	OutcomeOutOfBounds = "out_of_bounds"
	OutcomeStepLimit   = "step_limit"
	OutcomeCancelled   = "cancelled"
	OutcomeOther       = "error"
)

// Metrics holds the collectors fed by engine hooks.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Steps    *prometheus.CounterVec
	RunSteps *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tm_runs_total",
				Help: "Total number of machine runs by outcome",
			},
			[]string{"machine", "outcome"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tm_steps_total",
				Help: "Total number of transitions applied",
			},
			[]string{"machine"},
		),
		RunSteps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tm_run_steps",
				Help:    "Transitions applied per run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"machine"},
		),
	}

	for _, c := range []prometheus.Collector{m.Runs, m.Steps, m.RunSteps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks recording into m.
// Step counts are added once per run, at halt, to keep the inner loop cheap.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			machine := e.Machine
			if machine == "" {
				machine = "anonymous"
			}
			m.Runs.WithLabelValues(machine, outcome(e.Err)).Inc()
			m.Steps.WithLabelValues(machine).Add(float64(e.Result.Steps))
			m.RunSteps.WithLabelValues(machine).Observe(float64(e.Result.Steps))
		},
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeHalted
	case errors.Is(err, domain.ErrUndefinedTransition):
		return OutcomeUndefined
	case errors.Is(err, domain.ErrHeadOutOfBounds):
		return OutcomeOutOfBounds
	case errors.Is(err, domain.ErrStepLimitExceeded):
		return OutcomeStepLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	}
	return OutcomeOther
}
