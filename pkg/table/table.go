// Package table implements the deterministic transition function of a
// single-tape Turing machine.
package table

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Table maps (state, symbol) keys to actions.
//
// A state is final when it is not lower than the highest state referenced by
// any inserted rule, on either side. A table is meant to be built once and
// then only read; the lock makes late inserts safe but does not make them a
// good idea.
type Table struct {
	mu      sync.RWMutex
	delta   map[domain.Key]domain.Action
	highest domain.State
}

// New creates an empty table. With no rules, the start state is already final.
func New() *Table {
	return &Table{
		delta: make(map[domain.Key]domain.Action),
	}
}

// FromTransitions builds a table from a list of rules, failing on the first duplicate.
func FromTransitions(rules ...domain.Transition) (*Table, error) {
	t := New()
	for _, r := range rules {
		if err := t.Insert(r.Key, r.Action); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Insert registers a rule. An existing rule for the same key is never replaced.
func (t *Table) Insert(key domain.Key, act domain.Action) error {
	if key.State < 0 || act.Next < 0 {
		return fmt.Errorf("negative state in %s -> %s", key, act)
	}
	if !act.Move.Valid() {
		return fmt.Errorf("invalid move %d in %s", int(act.Move), key)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.delta[key]; ok {
		return &domain.DuplicateTransitionError{
			Key:      key,
			Existing: existing,
			Rejected: act,
		}
	}

	t.delta[key] = act
	t.highest = max(t.highest, key.State, act.Next)
	return nil
}

// Add is Insert spelled as the five-tuple (from, read) -> (to, write, move).
func (t *Table) Add(from domain.State, read domain.Symbol, to domain.State, write domain.Symbol, move domain.Move) error {
	return t.Insert(
		domain.Key{State: from, Symbol: read},
		domain.Action{Next: to, Write: write, Move: move},
	)
}

// Contains reports whether a rule exists for key.
func (t *Table) Contains(key domain.Key) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.delta[key]
	return ok
}

// Lookup returns the rule registered for key.
func (t *Table) Lookup(key domain.Key) (domain.Action, error) {
	t.mu.RLock()
	act, ok := t.delta[key]
	t.mu.RUnlock()

	if !ok {
		return domain.Action{}, fmt.Errorf("%w for %s", domain.ErrUndefinedTransition, key)
	}
	return act, nil
}

// IsFinal reports whether state halts the machine.
func (t *Table) IsFinal(state domain.State) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return state >= t.highest
}

// HighestState returns the largest state referenced so far.
func (t *Table) HighestState() domain.State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.highest
}

// Len returns the number of rules.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.delta)
}

// Transitions returns every rule ordered by state, then symbol.
func (t *Table) Transitions() []domain.Transition {
	t.mu.RLock()
	out := make([]domain.Transition, 0, len(t.delta))
	for k, v := range t.delta {
		out = append(out, domain.Transition{Key: k, Action: v})
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.State != out[j].Key.State {
			return out[i].Key.State < out[j].Key.State
		}
		return out[i].Key.Symbol < out[j].Key.Symbol
	})
	return out
}

// States returns every referenced state in ascending order.
func (t *Table) States() []domain.State {
	seen := make(map[domain.State]bool)
	for _, tr := range t.Transitions() {
		seen[tr.Key.State] = true
		seen[tr.Action.Next] = true
	}
	if len(seen) == 0 {
		seen[domain.StartState] = true
	}

	states := make([]domain.State, 0, len(seen))
	for s := range seen {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}
