package main

import (
	"os"

	"github.com/aretw0/turing/pkg/harness"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [problems...]",
	Short: "Run the test cases of one or more problems",
	Long: `Runs every case of the named problems and prints one line per case.
Without arguments it runs the --suite problems, or all built-ins when no suite
is given. Exits with status 1 if any case fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		ps, err := a.selectProblems(args)
		if err != nil {
			return err
		}

		var reporter harness.Reporter
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			reporter = harness.NewJSONReporter(os.Stdout)
		} else {
			reporter = harness.NewTextReporter(os.Stdout, harness.WithColor(isTerminal(os.Stdout)))
		}

		opts := []harness.Option{
			harness.WithReporter(reporter),
			harness.WithLogger(a.logger),
			harness.WithMaxSteps(a.cfg.MaxSteps),
			harness.WithWorkers(a.cfg.Workers),
		}
		if a.cfg.Redis.Addr != "" {
			store, closeStore := a.store()
			defer closeStore()
			opts = append(opts, harness.WithStore(store))
		}

		reports, err := harness.New(opts...).RunAll(cmd.Context(), ps)
		if err != nil {
			return err
		}
		if !harness.AllPassed(reports) {
			return errCasesFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("json", false, "Emit NDJSON events instead of text")
}
