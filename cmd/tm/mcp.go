package main

import (
	"github.com/aretw0/turing/pkg/adapters/mcp"
	"github.com/aretw0/turing/pkg/harness"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Serves list_problems, run_problem and exec_tape as MCP tools over stdio.
Logs go to stderr so they never corrupt the JSON-RPC stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		h := harness.New(
			harness.WithLogger(a.logger),
			harness.WithMaxSteps(a.cfg.MaxSteps),
			harness.WithWorkers(a.cfg.Workers),
		)
		srv := mcp.NewServer(a.reg, h, a.cfg.MaxSteps)

		a.logger.Info("starting MCP server (stdio)")
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
