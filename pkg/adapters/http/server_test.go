package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/harness"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/problems"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	return NewHandler(problems.Builtin(), harness.New(harness.WithLifecycleHooks(metrics.Hooks())),
		WithStore(memory.NewStore()),
		WithGatherer(reg),
		WithLifecycleHooks(metrics.Hooks()),
		WithMaxSteps(1000),
	)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(t, newTestHandler(t), "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListProblems(t *testing.T) {
	w := do(t, newTestHandler(t), "GET", "/problems", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []ProblemSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
	}
	assert.Equal(t, problems.Builtin().Names(), names)
}

func TestGetProblem(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/problems/increment", "")
	require.Equal(t, http.StatusOK, w.Code)
	var p problems.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, problems.Increment.Transitions, p.Transitions)

	w = do(t, h, "GET", "/problems/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunAndReport(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, "GET", "/problems/palindrome/report", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "no run yet")

	w = do(t, h, "POST", "/problems/palindrome/run", "")
	require.Equal(t, http.StatusOK, w.Code)
	var run domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.True(t, run.OK())
	assert.Equal(t, len(problems.Palindrome.Cases), run.Passed)

	w = do(t, h, "GET", "/problems/palindrome/report", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stored domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.Equal(t, run.Cases, stored.Cases)
}

func TestExec(t *testing.T) {
	h := newTestHandler(t)

	t.Run("Halts", func(t *testing.T) {
		w := do(t, h, "POST", "/exec", `{"problem":"increment","tape":">0001#"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var res ExecResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, ExecResponse{Tape: ">0010#", State: 2, Head: 3, Steps: 7}, res)
	})

	t.Run("Undefined Transition", func(t *testing.T) {
		w := do(t, h, "POST", "/exec", `{"problem":"increment","tape":">01x#"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "undefined transition")
	})

	t.Run("Out Of Bounds", func(t *testing.T) {
		w := do(t, h, "POST", "/exec", `{"problem":"increment","tape":""}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "outside tape")
	})

	t.Run("Unknown Problem", func(t *testing.T) {
		w := do(t, h, "POST", "/exec", `{"problem":"nope","tape":">#"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Bad Body", func(t *testing.T) {
		w := do(t, h, "POST", "/exec", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, "POST", "/exec", `{"problem":"increment","tape":">0001#"}`)

	w := do(t, h, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `tm_runs_total{machine="increment",outcome="halted"} 1`)
}
