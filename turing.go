package turing

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
)

// Machine is the high-level entry point of the library.
// It pairs a completed transition table with an execution engine.
type Machine struct {
	table    *table.Table
	runtime  *runtime.Engine
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	maxSteps int
	head     int
	Name     string
}

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithMaxSteps bounds every run to n transitions. Zero means unbounded.
func WithMaxSteps(n int) Option {
	return func(m *Machine) {
		m.maxSteps = n
	}
}

// WithStartHead overrides the initial head position (default 1).
func WithStartHead(head int) Option {
	return func(m *Machine) {
		m.head = head
	}
}

// WithName labels the machine in logs, events and metrics.
func WithName(name string) Option {
	return func(m *Machine) {
		m.Name = name
	}
}

// New creates a Machine over tbl. The table must not be modified afterwards.
func New(tbl *table.Table, opts ...Option) *Machine {
	m := &Machine{
		table: tbl,
		head:  domain.DefaultHead,
	}
	for _, opt := range opts {
		opt(m)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m.runtime = runtime.NewEngine(tbl,
		runtime.WithLogger(m.logger),
		runtime.WithLifecycleHooks(m.hooks),
		runtime.WithMaxSteps(m.maxSteps),
		runtime.WithStartHead(m.head),
		runtime.WithName(m.Name),
	)
	return m
}

// Run executes the machine on tape and returns the final tape contents.
func (m *Machine) Run(ctx context.Context, tape string) (string, error) {
	res, err := m.runtime.Run(ctx, []byte(tape))
	if err != nil {
		return "", err
	}
	return res.TapeString(), nil
}

// Execute runs the machine and returns the full result, including the
// partial result when the run fails.
func (m *Machine) Execute(ctx context.Context, tape []byte) (domain.Result, error) {
	return m.runtime.Run(ctx, tape)
}

// Table returns the transition table the machine interprets.
func (m *Machine) Table() *table.Table {
	return m.table
}
