package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/problems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brokenSuite = `problems:
  - name: broken
    transitions:
      - {from: 0, read: "0", to: 0, write: "0", move: R}
      - {from: 0, read: "#", to: 1, write: "#", move: H}
    cases:
      - {input: ">00#", expected: ">00#"}
      - {input: ">01#", expected: ">01#"}
`

func writeSuite(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSelectProblems(t *testing.T) {
	a := &app{reg: problems.Builtin()}

	all, err := a.selectProblems(nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	some, err := a.selectProblems([]string{"increment", "dummy"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "increment", some[0].Name)

	_, err = a.selectProblems([]string{"nope"})
	assert.ErrorIs(t, err, domain.ErrProblemNotFound)

	a.suite = []problems.Problem{problems.Dummy}
	only, err := a.selectProblems(nil)
	require.NoError(t, err)
	assert.Equal(t, []problems.Problem{problems.Dummy}, only)
}

func TestCommands(t *testing.T) {
	broken := writeSuite(t, brokenSuite)
	good := filepath.Join("..", "..", "testdata", "suite.yaml")

	tests := []struct {
		name string
		args []string
		err  error
		fail bool
	}{
		{name: "Run Builtins", args: []string{"run", "--suite", "", "increment", "palindrome"}},
		{name: "Run Suite", args: []string{"run", "--suite", good}},
		{name: "Run Failing Suite", args: []string{"run", "--suite", broken}, err: errCasesFailed},
		{name: "Unknown Problem", args: []string{"run", "--suite", "", "nope"}, err: domain.ErrProblemNotFound},
		{name: "Exec", args: []string{"exec", "--suite", "", "increment", ">0111#"}},
		{name: "Exec Undefined", args: []string{"exec", "--suite", "", "increment", ">0x#"}, err: domain.ErrUndefinedTransition},
		{name: "Graph", args: []string{"graph", "--suite", "", "count-zeros", "--tape", ">0#_"}},
		{name: "Describe", args: []string{"describe", "--suite", "", "palindrome", "--raw"}},
		{name: "List With Suite", args: []string{"list", "--suite", good}},
		{name: "Bad Log Level", args: []string{"list", "--suite", "", "--log-level", "loud"}, fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()
			switch {
			case tt.err != nil:
				assert.ErrorIs(t, err, tt.err)
			case tt.fail:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
