package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Table is the read side of a transition table needed to draw it.
type Table interface {
	Transitions() []domain.Transition
	States() []domain.State
	IsFinal(state domain.State) bool
}

// Overlay highlights the states touched by a run.
type Overlay struct {
	Visited []domain.State
	Current *domain.State
}

// GenerateMermaid produces a Mermaid stateDiagram-v2 for tbl.
// Edges are labelled read/write,move; the start state hangs off [*] and
// every final state leads back to it.
func GenerateMermaid(tbl Table, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", stateID(domain.StartState)))

	for _, t := range tbl.Transitions() {
		sb.WriteString(fmt.Sprintf("    %s --> %s : %s/%s,%s\n",
			stateID(t.Key.State),
			stateID(t.Action.Next),
			escapeSymbol(t.Key.Symbol),
			escapeSymbol(t.Action.Write),
			t.Action.Move,
		))
	}

	for _, s := range tbl.States() {
		if tbl.IsFinal(s) {
			sb.WriteString(fmt.Sprintf("    %s --> [*]\n", stateID(s)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    classDef visited fill:#e0e0e0,stroke:#333\n")
		sb.WriteString("    classDef current fill:#f9f,stroke:#333,stroke-width:2px\n")
		for _, s := range overlay.Visited {
			if overlay.Current != nil && s == *overlay.Current {
				continue
			}
			sb.WriteString(fmt.Sprintf("    class %s visited\n", stateID(s)))
		}
		if overlay.Current != nil {
			sb.WriteString(fmt.Sprintf("    class %s current\n", stateID(*overlay.Current)))
		}
	}

	return sb.String()
}

func stateID(s domain.State) string {
	return fmt.Sprintf("q%d", s)
}

// escapeSymbol keeps alphanumerics and '_' as-is and turns everything else
// into a Mermaid entity code, since ':', '#' and friends break the label.
func escapeSymbol(s domain.Symbol) string {
	c := byte(s)
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		return string(c)
	}
	return fmt.Sprintf("#%d;", c)
}
