package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// errCasesFailed makes the process exit with status 1 without extra output;
// the reporter already printed the failures.
var errCasesFailed = errors.New("some cases failed")

var rootCmd = &cobra.Command{
	Use:   "tm",
	Short: "tm runs deterministic single-tape Turing machines",
	Long: `tm simulates Turing machines given as transition tables.

It ships a set of built-in problems (binary increment, zero counting,
palindromes) and loads more from YAML suite files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Commands observe SIGINT and SIGTERM through cmd.Context().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errCasesFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands); they override TM_* variables.
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json)")
	rootCmd.PersistentFlags().Int("max-steps", 0, "Step budget per run (0 keeps TM_MAX_STEPS)")
	rootCmd.PersistentFlags().String("suite", "", "YAML suite file with extra problems")
}
