package dsl

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
)

// Builder collects rules into a transition table.
type Builder struct {
	table *table.Table
	errs  []error
}

// New creates a new table builder.
func New() *Builder {
	return &Builder{table: table.New()}
}

// On starts a rule for (state, read). By default the rule writes back the
// symbol it read and holds the head.
func (b *Builder) On(state domain.State, read domain.Symbol) *RuleBuilder {
	return &RuleBuilder{
		builder: b,
		key:     domain.Key{State: state, Symbol: read},
		action:  domain.Action{Write: read, Move: domain.Hold},
	}
}

// Rule adds fully specified transitions.
func (b *Builder) Rule(rules ...domain.Transition) *Builder {
	for _, r := range rules {
		b.insert(r.Key, r.Action)
	}
	return b
}

// Pass adds, for every symbol in symbols, a rule that stays in state,
// leaves the cell untouched and moves the head.
func (b *Builder) Pass(state domain.State, move domain.Move, symbols string) *Builder {
	for i := 0; i < len(symbols); i++ {
		sym := domain.Symbol(symbols[i])
		b.insert(domain.Key{State: state, Symbol: sym}, domain.Action{Next: state, Write: sym, Move: move})
	}
	return b
}

func (b *Builder) insert(key domain.Key, act domain.Action) {
	if err := b.table.Insert(key, act); err != nil {
		b.errs = append(b.errs, err)
	}
}

// Build returns the table, or a *BuildError listing every rejected rule.
func (b *Builder) Build() (*table.Table, error) {
	if len(b.errs) > 0 {
		return nil, &BuildError{Errors: b.errs}
	}
	return b.table, nil
}

// RuleBuilder configures a single rule.
type RuleBuilder struct {
	builder *Builder
	key     domain.Key
	action  domain.Action
}

// Write sets the symbol written over the cell.
func (r *RuleBuilder) Write(sym domain.Symbol) *RuleBuilder {
	r.action.Write = sym
	return r
}

// Left moves the head one cell left after writing.
func (r *RuleBuilder) Left() *RuleBuilder {
	return r.Move(domain.Left)
}

// Right moves the head one cell right after writing.
func (r *RuleBuilder) Right() *RuleBuilder {
	return r.Move(domain.Right)
}

// Hold keeps the head in place.
func (r *RuleBuilder) Hold() *RuleBuilder {
	return r.Move(domain.Hold)
}

// Move sets the head movement.
func (r *RuleBuilder) Move(m domain.Move) *RuleBuilder {
	r.action.Move = m
	return r
}

// Go sets the next state and commits the rule.
func (r *RuleBuilder) Go(next domain.State) *Builder {
	r.action.Next = next
	r.builder.insert(r.key, r.action)
	return r.builder
}

// BuildError aggregates every rule rejected while building.
type BuildError struct {
	Errors []error
}

func (e *BuildError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d invalid rules:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err)
	}
	return sb.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *BuildError) Unwrap() []error {
	return e.Errors
}
