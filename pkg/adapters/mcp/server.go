// Package mcp exposes the problem catalogue as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/harness"
	"github.com/aretw0/turing/pkg/problems"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ExecResult is the JSON payload of exec_tape.
type ExecResult struct {
	Tape  string       `json:"tape"`
	State domain.State `json:"state"`
	Head  int          `json:"head"`
	Steps int          `json:"steps"`
	Error string       `json:"error,omitempty"`
}

// Server wraps the registry and exposes it as an MCP Server.
type Server struct {
	problems  *problems.Registry
	harness   *harness.Harness
	maxSteps  int
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. maxSteps bounds exec_tape.
func NewServer(reg *problems.Registry, h *harness.Harness, maxSteps int) *Server {
	s := &Server{
		problems:  reg,
		harness:   h,
		maxSteps:  maxSteps,
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(turing.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_problems",
		mcp.WithDescription("List the known Turing machine problems."),
	), s.handleListProblems)

	s.mcpServer.AddTool(mcp.NewTool("run_problem",
		mcp.WithDescription("Run every test case of a problem and return the report."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Problem name")),
	), s.handleRunProblem)

	s.mcpServer.AddTool(mcp.NewTool("exec_tape",
		mcp.WithDescription("Run a problem's machine on a single tape and return the final tape."),
		mcp.WithString("problem", mcp.Required(), mcp.Description("Problem name")),
		mcp.WithString("tape", mcp.Required(), mcp.Description("Input tape, e.g. >0101#")),
	), s.handleExecTape)
}

func (s *Server) handleListProblems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type entry struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Cases       int    `json:"cases"`
	}
	var out []entry
	for _, p := range s.problems.List() {
		out = append(out, entry{Name: p.Name, Description: p.Description, Cases: len(p.Cases)})
	}
	return jsonResult(out)
}

func (s *Server) handleRunProblem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := s.problems.Get(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := s.harness.Run(ctx, p)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("run failed: %v", err)), nil
	}
	return jsonResult(report)
}

func (s *Server) handleExecTape(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("problem")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tape, err := request.RequireString("tape")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.problems.Get(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tbl, err := p.Table()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	m := turing.New(tbl, turing.WithName(p.Name), turing.WithMaxSteps(s.maxSteps))
	res, err := m.Execute(ctx, []byte(tape))
	out := ExecResult{
		Tape:  res.TapeString(),
		State: res.State,
		Head:  res.Head,
		Steps: res.Steps,
	}
	if err != nil {
		if !harness.IsMachineError(err) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		// The partial configuration helps the caller see where the machine stopped.
		out.Error = err.Error()
		result, jerr := jsonResult(out)
		if jerr != nil {
			return nil, jerr
		}
		result.IsError = true
		return result, nil
	}
	return jsonResult(out)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
