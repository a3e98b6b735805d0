package harness_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/harness"
	"github.com/aretw0/turing/pkg/problems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gappy has no rule for (0, '1'), so any tape reaching a 1 aborts.
var gappy = problems.Problem{
	Name: "gappy",
	Transitions: []domain.Transition{
		domain.T(0, '0', 0, '0', domain.Right),
		domain.T(0, '#', 1, '#', domain.Hold),
	},
	Cases: []problems.Case{
		{Input: ">00#", Expected: ">00#"},
		{Input: ">01#", Expected: ">01#"},
		{Input: ">0#", Expected: ">1#"},
		{Input: ">000#", Expected: ">000#"},
	},
}

func TestHarness_Run_Builtin(t *testing.T) {
	h := harness.New()

	for _, p := range problems.Builtin().List() {
		report, err := h.Run(context.Background(), p)
		require.NoError(t, err, p.Name)
		assert.True(t, report.OK(), "%s: %+v", p.Name, report.Cases)
		assert.Equal(t, len(p.Cases), report.Passed)
	}
}

func TestHarness_FailuresDoNotAbortBatch(t *testing.T) {
	report, err := harness.New(harness.WithWorkers(1)).Run(context.Background(), gappy)
	require.NoError(t, err)

	require.Len(t, report.Cases, 4)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 2, report.Failed)
	assert.False(t, report.OK())

	assert.Equal(t, domain.OutcomePass, report.Cases[0].Outcome)

	assert.Equal(t, domain.OutcomeError, report.Cases[1].Outcome)
	assert.Contains(t, report.Cases[1].Error, "undefined transition")

	assert.Equal(t, domain.OutcomeMismatch, report.Cases[2].Outcome)
	assert.Equal(t, ">0#", report.Cases[2].Actual)

	assert.Equal(t, domain.OutcomePass, report.Cases[3].Outcome, "cases after a failure still run")
	for i, c := range report.Cases {
		assert.Equal(t, i+1, c.Index)
	}
}

func TestHarness_InvalidTable(t *testing.T) {
	broken := problems.Problem{
		Name: "broken",
		Transitions: []domain.Transition{
			domain.T(0, 'a', 1, 'a', domain.Right),
			domain.T(0, 'a', 2, 'a', domain.Right),
		},
	}
	_, err := harness.New().Run(context.Background(), broken)
	assert.ErrorIs(t, err, domain.ErrDuplicateTransition)
}

func TestHarness_StepBudget(t *testing.T) {
	looping := problems.Problem{
		Name: "looping",
		Transitions: []domain.Transition{
			domain.T(0, 'a', 1, 'a', domain.Right),
			domain.T(1, 'b', 0, 'b', domain.Left),
			domain.T(2, 'c', 2, 'c', domain.Hold),
		},
		Cases: []problems.Case{{Input: ">ab", Expected: ">ab"}},
	}

	report, err := harness.New(harness.WithMaxSteps(50)).Run(context.Background(), looping)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeError, report.Cases[0].Outcome)
	assert.Equal(t, 50, report.Cases[0].Steps)
}

func TestHarness_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := harness.New().Run(ctx, problems.Increment)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHarness_StoresReports(t *testing.T) {
	store := memory.NewStore()
	h := harness.New(harness.WithStore(store))

	reports, err := h.RunAll(context.Background(), []problems.Problem{problems.Increment, gappy})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.False(t, harness.AllPassed(reports))

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gappy", "increment"}, names)

	saved, err := store.Load(context.Background(), "increment")
	require.NoError(t, err)
	assert.True(t, saved.OK())
}

func TestHarness_Hooks(t *testing.T) {
	var halts atomic.Int64
	h := harness.New(harness.WithLifecycleHooks(domain.LifecycleHooks{
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			assert.Equal(t, "increment", e.Machine)
			halts.Add(1)
		},
	}))

	_, err := h.Run(context.Background(), problems.Increment)
	require.NoError(t, err)
	assert.Equal(t, int64(len(problems.Increment.Cases)), halts.Load())
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	h := harness.New(harness.WithReporter(harness.NewTextReporter(&buf, harness.WithColor(false))))

	_, err := h.Run(context.Background(), gappy)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Running gappy",
		"Test 1 succeeded",
		"Test 2 failed: Expected: >01#; Error: undefined transition for (0, '1') at head 2 after 1 steps",
		"Test 3 failed: Expected: >1#; Actual: >0#",
		"Test 4 succeeded",
		"2 passed, 2 failed",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	h := harness.New(harness.WithReporter(harness.NewJSONReporter(&buf)))

	_, err := h.Run(context.Background(), problems.Dummy)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var events []harness.JSONEvent
	for _, line := range lines {
		var ev harness.JSONEvent
		require.NoError(t, json.Unmarshal([]byte(line), &ev))
		events = append(events, ev)
	}

	assert.Equal(t, "start", events[0].Event)
	assert.Equal(t, "case", events[1].Event)
	require.NotNil(t, events[1].Case)
	assert.Equal(t, ">001#", events[1].Case.Actual)
	assert.Equal(t, "finish", events[2].Event)
	require.NotNil(t, events[2].Passed)
	assert.Equal(t, 1, *events[2].Passed)
}
