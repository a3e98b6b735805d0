package problems

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
)

// Case is one input tape and the tape the machine must leave behind.
type Case struct {
	Input    string `json:"input" yaml:"input" mapstructure:"input"`
	Expected string `json:"expected" yaml:"expected" mapstructure:"expected"`
}

// Problem is a named machine with its test cases.
type Problem struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Transitions []domain.Transition `json:"transitions"`
	Cases       []Case              `json:"cases"`
}

// Table builds the transition table of the problem.
func (p Problem) Table() (*table.Table, error) {
	tbl, err := table.FromTransitions(p.Transitions...)
	if err != nil {
		return nil, fmt.Errorf("problem %s: %w", p.Name, err)
	}
	return tbl, nil
}

// Registry manages the available problems.
type Registry struct {
	mu       sync.RWMutex
	problems map[string]Problem
}

// NewRegistry creates a registry holding the given problems.
func NewRegistry(ps ...Problem) (*Registry, error) {
	r := &Registry{problems: make(map[string]Problem)}
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a problem. Names must be unique and non-empty.
func (r *Registry) Register(p Problem) error {
	if p.Name == "" {
		return fmt.Errorf("problem missing name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.problems[p.Name]; ok {
		return fmt.Errorf("problem %q already registered", p.Name)
	}
	r.problems[p.Name] = p
	return nil
}

// Get looks up a problem by name.
func (r *Registry) Get(name string) (Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %s", domain.ErrProblemNotFound, name)
	}
	return p, nil
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// List returns every problem ordered by name.
func (r *Registry) List() []Problem {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Problem, 0, len(names))
	for _, name := range names {
		out = append(out, r.problems[name])
	}
	return out
}
