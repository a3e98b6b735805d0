package domain

import "fmt"

// Key selects a rule: the current state and the symbol under the head.
// It is comparable and used directly as a map key.
type Key struct {
	State  State  `json:"state" yaml:"state"`
	Symbol Symbol `json:"symbol" yaml:"symbol"`
}

func (k Key) String() string {
	return fmt.Sprintf("(%d, %s)", k.State, k.Symbol)
}

// Action is the outcome of a rule.
type Action struct {
	Next  State  `json:"next" yaml:"next"`
	Write Symbol `json:"write" yaml:"write"`
	Move  Move   `json:"move" yaml:"move"`
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %s, %s)", a.Next, a.Write, a.Move)
}

// Transition is one row of the transition function.
type Transition struct {
	Key    Key    `json:"key" yaml:"key"`
	Action Action `json:"action" yaml:"action"`
}

// T is shorthand for building a Transition from its five components,
// in the order (from, read) -> (to, write, move).
func T(from State, read Symbol, to State, write Symbol, move Move) Transition {
	return Transition{
		Key:    Key{State: from, Symbol: read},
		Action: Action{Next: to, Write: write, Move: move},
	}
}

func (t Transition) String() string {
	return t.Key.String() + " -> " + t.Action.String()
}
