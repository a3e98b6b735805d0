package runtime

import (
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// EngineOption defines a functional option for the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMaxSteps bounds the number of transitions a single run may apply.
// Zero disables the bound.
func WithMaxSteps(n int) EngineOption {
	return func(e *Engine) {
		if n >= 0 {
			e.maxSteps = n
		}
	}
}

// WithStartHead overrides the initial head position (default: domain.DefaultHead).
func WithStartHead(head int) EngineOption {
	return func(e *Engine) {
		e.startHead = head
	}
}

// WithName labels the machine in logs and events.
func WithName(name string) EngineOption {
	return func(e *Engine) {
		e.name = name
	}
}
