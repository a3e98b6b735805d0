package main

import (
	"context"
	"fmt"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <problem>",
	Short: "Export the state diagram of a problem",
	Long: `Outputs a Mermaid diagram (stateDiagram-v2) of the problem's transition table.
With --tape the states visited by that run are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		p, err := a.reg.Get(args[0])
		if err != nil {
			return err
		}
		tbl, err := p.Table()
		if err != nil {
			return err
		}

		var overlay *graph.Overlay
		if tape, _ := cmd.Flags().GetString("tape"); tape != "" {
			overlay = &graph.Overlay{Visited: []domain.State{domain.StartState}}
			seen := map[domain.State]bool{domain.StartState: true}
			hooks := domain.LifecycleHooks{
				OnStep: func(_ context.Context, e *domain.StepEvent) {
					if next := e.Transition.Action.Next; !seen[next] {
						seen[next] = true
						overlay.Visited = append(overlay.Visited, next)
					}
				},
			}

			m := turing.New(tbl,
				turing.WithName(p.Name),
				turing.WithLogger(a.logger),
				turing.WithMaxSteps(a.cfg.MaxSteps),
				turing.WithLifecycleHooks(hooks),
			)
			res, err := m.Execute(cmd.Context(), []byte(tape))
			if err != nil {
				a.logger.Warn("overlay run did not halt", "error", err)
			}
			overlay.Current = &res.State
		}

		fmt.Print(graph.GenerateMermaid(tbl, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("tape", "", "Highlight the states visited on this tape")
}
