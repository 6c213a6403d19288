package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalWidth_NonTerminal(t *testing.T) {
	tty, width := terminalWidth(new(bytes.Buffer))
	assert.False(t, tty)
	assert.Zero(t, width)
}

func TestRenderTable_PlainForNonTerminal(t *testing.T) {
	buf := new(bytes.Buffer)
	out := renderTable(buf, []string{"Title", "Price"}, [][]string{
		{"Yellow", "$1.29"},
		{"Clocks", "N/A"},
	})

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Yellow")
	assert.Contains(t, out, "$1.29")
	assert.Contains(t, out, "+")
	assert.NotContains(t, out, "╭")

	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 4)
}

func TestRenderTable_HeadersOnly(t *testing.T) {
	out := renderTable(new(bytes.Buffer), []string{"When", "Term"}, nil)
	assert.Contains(t, out, "When")
	assert.Contains(t, out, "Term")
}
