package main

import (
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <problem>",
	Short: "Show a problem's transition table and cases",
	Args:  cobra.ExactArgs(1),
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

		doc := tui.Document(p, tbl)
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Print(doc)
			return nil
		}

		render, err := tui.NewRenderer(!isTerminal(os.Stdout))
		if err != nil {
			return err
		}
		out, err := render(doc)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("raw", false, "Print the markdown source")
}
