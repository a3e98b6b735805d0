package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/problems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	tbl, err := problems.Increment.Table()
	require.NoError(t, err)

	doc := tui.Document(problems.Increment, tbl)
	assert.Contains(t, doc, "# increment\n")
	assert.Contains(t, doc, "States: 3 (final: >= 2), rules: 6")
	assert.Contains(t, doc, "| 0 | `#` | 1 | `#` | L |")
	assert.Contains(t, doc, "| 1 | `0` | 2 | `1` | H |")
	assert.Contains(t, doc, "| 1 | `>0100#` | `>0101#` |")
}

func TestDocument_Empty(t *testing.T) {
	tbl, err := problems.Empty.Table()
	require.NoError(t, err)

	doc := tui.Document(problems.Empty, tbl)
	assert.Contains(t, doc, "States: 1 (final: >= 0), rules: 0")
	assert.Contains(t, doc, "_No rules. The start state is final._")
}

func TestRenderer_Plain(t *testing.T) {
	render, err := tui.NewRenderer(true)
	require.NoError(t, err)

	out, err := render("# increment\n\nBinary increment.\n")
	require.NoError(t, err)
	assert.Contains(t, out, "increment")
	assert.Contains(t, out, "Binary increment.")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "0.1.0")
	assert.Contains(t, buf.String(), "turing machine simulator 0.1.0")
	assert.NotContains(t, buf.String(), "\x1b[", "buffers are not terminals")
}
