package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/problems"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxSteps is the step budget applied when none is configured.
const DefaultMaxSteps = 1_000_000

// Harness runs problems case by case.
type Harness struct {
	workers  int
	maxSteps int
	reporter Reporter
	store    ports.ReportStore
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// New creates a harness. Without a reporter, outcomes are only returned.
func New(opts ...Option) *Harness {
	h := &Harness{
		workers:  DefaultWorkers,
		maxSteps: DefaultMaxSteps,
		reporter: NopReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes every case of p and returns its report.
// The error is non-nil only when the problem cannot run at all (invalid
// table, cancelled context, reporter or store failure); failing cases are
// recorded in the report.
func (h *Harness) Run(ctx context.Context, p problems.Problem) (*domain.Report, error) {
	tbl, err := p.Table()
	if err != nil {
		return nil, err
	}

	machine := turing.New(tbl,
		turing.WithName(p.Name),
		turing.WithLogger(h.logger),
		turing.WithMaxSteps(h.maxSteps),
		turing.WithLifecycleHooks(h.hooks),
	)

	if err := h.reporter.Start(p.Name); err != nil {
		return nil, fmt.Errorf("report start: %w", err)
	}

	report := &domain.Report{
		Problem:   p.Name,
		Cases:     make([]domain.CaseResult, len(p.Cases)),
		StartedAt: time.Now().UTC(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)
	for i, c := range p.Cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Cases[i] = runCase(gctx, machine, i+1, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("problem %s: %w", p.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("problem %s: %w", p.Name, err)
	}
	report.Duration = time.Since(report.StartedAt)

	for _, cr := range report.Cases {
		if cr.Passed() {
			report.Passed++
		} else {
			report.Failed++
		}
		if err := h.reporter.Case(p.Name, cr); err != nil {
			return nil, fmt.Errorf("report case: %w", err)
		}
	}

	if err := h.reporter.Finish(report); err != nil {
		return nil, fmt.Errorf("report finish: %w", err)
	}

	h.logger.Info("problem finished",
		"problem", p.Name,
		"passed", report.Passed,
		"failed", report.Failed,
		"duration", report.Duration,
	)

	if h.store != nil {
		if err := h.store.Save(ctx, report); err != nil {
			return report, fmt.Errorf("save report %s: %w", p.Name, err)
		}
	}
	return report, nil
}

// RunAll runs problems in order. It stops only on errors returned by Run.
func (h *Harness) RunAll(ctx context.Context, ps []problems.Problem) ([]*domain.Report, error) {
	reports := make([]*domain.Report, 0, len(ps))
	for _, p := range ps {
		report, err := h.Run(ctx, p)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func runCase(ctx context.Context, machine *turing.Machine, index int, c problems.Case) domain.CaseResult {
	cr := domain.CaseResult{
		Index:    index,
		Input:    c.Input,
		Expected: c.Expected,
	}

	res, err := machine.Execute(ctx, []byte(c.Input))
	cr.Steps = res.Steps
	cr.Actual = res.TapeString()

	switch {
	case err != nil:
		cr.Outcome = domain.OutcomeError
		cr.Error = err.Error()
	case cr.Actual == c.Expected:
		cr.Outcome = domain.OutcomePass
	default:
		cr.Outcome = domain.OutcomeMismatch
	}
	return cr
}

// AllPassed reports whether every report is free of failures.
func AllPassed(reports []*domain.Report) bool {
	for _, r := range reports {
		if !r.OK() {
			return false
		}
	}
	return true
}

// IsMachineError reports whether err comes from a run aborting rather than from I/O.
func IsMachineError(err error) bool {
	return errors.Is(err, domain.ErrUndefinedTransition) ||
		errors.Is(err, domain.ErrHeadOutOfBounds) ||
		errors.Is(err, domain.ErrStepLimitExceeded)
}
