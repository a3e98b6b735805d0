package file_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSuite(t *testing.T) {
	ps, err := file.LoadSuite(filepath.Join("..", "..", "..", "testdata", "suite.yaml"))
	require.NoError(t, err)
	require.Len(t, ps, 2)

	invert := ps[0]
	assert.Equal(t, "invert", invert.Name)
	assert.Equal(t, "Flips every bit between '>' and '#'.", invert.Description)
	assert.Equal(t, domain.T(0, '0', 0, '1', domain.Right), invert.Transitions[0])
	assert.Equal(t, domain.T(0, '#', 1, '#', domain.Hold), invert.Transitions[2])
	assert.Len(t, invert.Cases, 2)

	assert.Equal(t, domain.T(0, '1', 0, '_', domain.Right), ps[1].Transitions[0])

	reports, err := harness.New().RunAll(context.Background(), ps)
	require.NoError(t, err)
	assert.True(t, harness.AllPassed(reports))
}

func TestLoadSuite_Missing(t *testing.T) {
	_, err := file.LoadSuite(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read suite")
}

func TestParseSuite_JSON(t *testing.T) {
	ps, err := file.ParseSuite([]byte(`{"problems": [{"name": "j", "transitions": [{"from": 0, "read": "a", "to": 1, "write": "b", "move": "L"}]}]}`))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, domain.T(0, 'a', 1, 'b', domain.Left), ps[0].Transitions[0])
}

func TestParseSuite_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"Malformed YAML", "problems: [", "failed to parse suite"},
		{"Missing Name", "problems:\n  - cases: []\n", "missing name"},
		{"Long Symbol", "problems:\n  - name: x\n    transitions:\n      - {from: 0, read: ab, to: 1, write: a, move: R}\n", "single byte"},
		{"Big Number Symbol", "problems:\n  - name: x\n    transitions:\n      - {from: 0, read: 12, to: 1, write: a, move: R}\n", "single digit"},
		{"Bad Move", "problems:\n  - name: x\n    transitions:\n      - {from: 0, read: a, to: 1, write: a, move: up}\n", "move"},
		{"Unknown Field", "problems:\n  - name: x\n    colour: red\n", "colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := file.ParseSuite([]byte(tt.doc))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
