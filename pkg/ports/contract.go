package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunReportStoreContract runs a suite of tests to verify that a ReportStore
// implementation adheres to the interface contract.
func RunReportStoreContract(t *testing.T, store ReportStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	newReport := func(problem string) *domain.Report {
		return &domain.Report{
			Problem: problem,
			Cases: []domain.CaseResult{
				{Index: 1, Input: ">0#", Expected: ">1#", Actual: ">1#", Steps: 3, Outcome: domain.OutcomePass},
				{Index: 2, Input: ">1#", Expected: ">0#", Actual: "", Outcome: domain.OutcomeError, Error: "undefined transition"},
			},
			Passed:    1,
			Failed:    1,
			StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Duration:  15 * time.Millisecond,
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		report := newReport(name)
		require.NoError(t, store.Save(ctx, report), "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, report.Problem, loaded.Problem)
		assert.Equal(t, report.Cases, loaded.Cases)
		assert.Equal(t, 1, loaded.Failed)
		assert.True(t, report.StartedAt.Equal(loaded.StartedAt))
		assert.Equal(t, report.Duration, loaded.Duration)
	})

	t.Run("Load Is Isolated", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newReport(name)))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		loaded.Cases[0].Actual = "tampered"

		again, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, ">1#", again.Cases[0].Actual)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		report := newReport(name)
		report.Passed, report.Failed = 2, 0
		require.NoError(t, store.Save(ctx, report))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.True(t, loaded.OK())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newReport(name)))
		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrReportNotFound, "Load after Delete should return ErrReportNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		require.NoError(t, store.Save(ctx, newReport(id2)))
		require.NoError(t, store.Save(ctx, newReport(id1)))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsIncreasing(t, names)
	})
}
