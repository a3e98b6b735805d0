package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Store implements ports.ReportStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Report
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Report),
	}
}

// Save persists the report in memory.
func (s *Store) Save(ctx context.Context, report *domain.Report) error {
	if report == nil || report.Problem == "" {
		return fmt.Errorf("report missing problem name")
	}

	copied := cloneReport(report)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[report.Problem] = copied
	return nil
}

// Load retrieves the report from memory.
func (s *Store) Load(ctx context.Context, problem string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.data[problem]
	if !ok {
		return nil, domain.ErrReportNotFound
	}

	// Copy on read so callers can't mutate the store through the pointer
	return cloneReport(report), nil
}

// Delete removes the report.
func (s *Store) Delete(ctx context.Context, problem string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, problem)
	return nil
}

// List returns the stored problem names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names, nil
}

func cloneReport(src *domain.Report) *domain.Report {
	out := *src
	out.Cases = append([]domain.CaseResult(nil), src.Cases...)
	return &out
}
