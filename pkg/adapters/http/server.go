// Package http exposes problems, runs and reports over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/harness"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/problems"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds request bodies, tapes included.
const maxBodyBytes = 1 << 20

// ProblemSummary is an entry of GET /problems.
type ProblemSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rules       int    `json:"rules"`
	Cases       int    `json:"cases"`
}

// ExecRequest is the body of POST /exec.
type ExecRequest struct {
	Problem string `json:"problem"`
	Tape    string `json:"tape"`
}

// ExecResponse is the outcome of a halted run.
type ExecResponse struct {
	Tape  string       `json:"tape"`
	State domain.State `json:"state"`
	Head  int          `json:"head"`
	Steps int          `json:"steps"`
}

// ErrorResponse carries any failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves the API over a problem registry.
type Server struct {
	problems *problems.Registry
	harness  *harness.Harness
	store    ports.ReportStore
	gatherer prometheus.Gatherer
	hooks    domain.LifecycleHooks
	maxSteps int
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithStore keeps the report of every POST /problems/{name}/run.
// Without a store GET /problems/{name}/report always answers 404.
func WithStore(store ports.ReportStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithGatherer serves gatherer on GET /metrics.
func WithGatherer(gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

// WithLifecycleHooks attaches hooks to POST /exec runs.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// WithMaxSteps bounds POST /exec runs.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		s.maxSteps = n
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler. h runs whole problems.
func NewHandler(reg *problems.Registry, h *harness.Harness, opts ...Option) http.Handler {
	s := &Server{
		problems: reg,
		harness:  h,
		gatherer: prometheus.DefaultGatherer,
		maxSteps: harness.DefaultMaxSteps,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/problems", func(r chi.Router) {
		r.Get("/", s.listProblems)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.getProblem)
			r.Post("/run", s.runProblem)
			r.Get("/report", s.getReport)
		})
	})
	r.Post("/exec", s.exec)

	return r
}

func (s *Server) listProblems(w http.ResponseWriter, r *http.Request) {
	list := s.problems.List()
	out := make([]ProblemSummary, 0, len(list))
	for _, p := range list {
		out = append(out, ProblemSummary{
			Name:        p.Name,
			Description: p.Description,
			Rules:       len(p.Transitions),
			Cases:       len(p.Cases),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getProblem(w http.ResponseWriter, r *http.Request) {
	p, err := s.problems.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) runProblem(w http.ResponseWriter, r *http.Request) {
	p, err := s.problems.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, err)
		return
	}

	report, err := s.harness.Run(r.Context(), p)
	if err != nil {
		s.fail(w, err)
		return
	}
	if s.store != nil {
		if err := s.store.Save(r.Context(), report); err != nil {
			s.fail(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if s.store == nil {
		s.fail(w, domain.ErrReportNotFound)
		return
	}
	report, err := s.store.Load(r.Context(), name)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) exec(w http.ResponseWriter, r *http.Request) {
	var body ExecRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.logger.Warn("exec: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	p, err := s.problems.Get(body.Problem)
	if err != nil {
		s.fail(w, err)
		return
	}
	tbl, err := p.Table()
	if err != nil {
		s.fail(w, err)
		return
	}

	m := turing.New(tbl,
		turing.WithName(p.Name),
		turing.WithLogger(s.logger),
		turing.WithMaxSteps(s.maxSteps),
		turing.WithLifecycleHooks(s.hooks),
	)
	res, err := m.Execute(r.Context(), []byte(body.Tape))
	if err != nil {
		s.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ExecResponse{
		Tape:  res.TapeString(),
		State: res.State,
		Head:  res.Head,
		Steps: res.Steps,
	})
}

// fail maps domain errors onto status codes.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrProblemNotFound), errors.Is(err, domain.ErrReportNotFound):
		status = http.StatusNotFound
	case harness.IsMachineError(err):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
