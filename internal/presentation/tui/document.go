package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/problems"
	"github.com/aretw0/turing/pkg/table"
)

// Document builds the markdown description of a problem: its transition
// table and its test cases.
func Document(p problems.Problem, tbl *table.Table) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", p.Description)
	}
	fmt.Fprintf(&sb, "States: %d (final: >= %d), rules: %d\n\n",
		len(tbl.States()), tbl.HighestState(), tbl.Len())

	sb.WriteString("## Transitions\n\n")
	if tbl.Len() == 0 {
		sb.WriteString("_No rules. The start state is final._\n\n")
	} else {
		sb.WriteString("| State | Read | Next | Write | Move |\n")
		sb.WriteString("|---|---|---|---|---|\n")
		for _, t := range tbl.Transitions() {
			fmt.Fprintf(&sb, "| %d | %s | %d | %s | %s |\n",
				t.Key.State, cell(byte(t.Key.Symbol)),
				t.Action.Next, cell(byte(t.Action.Write)), t.Action.Move)
		}
		sb.WriteString("\n")
	}

	if len(p.Cases) > 0 {
		sb.WriteString("## Cases\n\n")
		sb.WriteString("| # | Input | Expected |\n")
		sb.WriteString("|---|---|---|\n")
		for i, c := range p.Cases {
			fmt.Fprintf(&sb, "| %d | `%s` | `%s` |\n", i+1, c.Input, c.Expected)
		}
	}

	return sb.String()
}

// cell renders a symbol as inline code; '|' would otherwise split the column.
func cell(c byte) string {
	if c == '|' {
		return "`\\|`"
	}
	return "`" + string(c) + "`"
}
