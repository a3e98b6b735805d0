package main

import (
	"fmt"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/trace"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <problem> <tape>",
	Short: "Run a problem's machine on one tape",
	Long: `Runs the machine of a problem on the given tape and prints the final tape.
With --trace every configuration is printed to stderr as it is visited.`,
	Example: `  tm exec increment '>0111#'
  tm exec palindrome '>0110#_' --trace`,
	Args: cobra.ExactArgs(2),
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

		opts := []turing.Option{
			turing.WithName(p.Name),
			turing.WithLogger(a.logger),
			turing.WithMaxSteps(a.cfg.MaxSteps),
		}
		if tr, _ := cmd.Flags().GetBool("trace"); tr {
			opts = append(opts, turing.WithLifecycleHooks(trace.New(os.Stderr).Hooks()))
		}

		res, err := turing.New(tbl, opts...).Execute(cmd.Context(), []byte(args[1]))
		if err != nil {
			return fmt.Errorf("%s stopped with tape %s: %w", p.Name, res.TapeString(), err)
		}

		fmt.Println(res.TapeString())
		a.logger.Info("halted", "state", res.State, "head", res.Head, "steps", res.Steps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().Bool("trace", false, "Print every configuration to stderr")
}
