package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "DATE", "PROFILE"},
		[][]string{
			{"a1b2c3d4", "Today", "Maker"},
			{"e5f6", "Yesterday", "Organiser"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator and one line per row")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "a1b2c3d4")
	assert.Contains(t, lines[3], "Organiser")
}

func TestRenderTable_ColumnAlignment(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "SCORE"},
		[][]string{
			{"Mastery", "4.2"},
			{"Cross-collaboration", "1.0"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	// Both score cells start at the same column, set by the widest name.
	assert.Equal(t, strings.Index(lines[2], "4.2"), strings.Index(lines[3], "1.0"))
}

func TestRenderTable_ShortRows(t *testing.T) {
	out := RenderTable(
		[]string{"A", "B"},
		[][]string{{"only"}},
	)
	assert.Contains(t, out, "only", "rows shorter than the header render their cells")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
