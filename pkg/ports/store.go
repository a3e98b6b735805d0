package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// ReportStore persists the latest report of each problem.
// It stores run outcomes only; machine state is never persisted mid-run.
type ReportStore interface {
	// Save stores the report under its problem name, replacing any previous one.
	Save(ctx context.Context, report *domain.Report) error

	// Load retrieves the report of a problem.
	// Returns domain.ErrReportNotFound if none is stored.
	Load(ctx context.Context, problem string) (*domain.Report, error)

	// Delete removes the report of a problem.
	Delete(ctx context.Context, problem string) error

	// List returns the names of problems with a stored report, in ascending order.
	List(ctx context.Context) ([]string, error)
}
