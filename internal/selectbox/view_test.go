package selectbox

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainLines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}

func TestViewClosedSingle(t *testing.T) {
	h := newSingleHarness(1)
	h.model.SetWidth(20)

	lines := plainLines(h.model.View())
	require.Len(t, lines, 1)
	assert.Equal(t, " Second       × │ ▾ ", lines[0])
	assert.Equal(t, 1, h.model.Height())
}

func TestViewOpenListsOptionsWithMarks(t *testing.T) {
	h := newSingleHarness(2)
	h.model.Click()

	lines := plainLines(h.model.View())
	require.Len(t, lines, 1+len(h.opts))
	assert.Equal(t, len(lines), h.model.Height())
	assert.Contains(t, lines[0], caretOpen)
	assert.True(t, strings.HasPrefix(lines[1], "   First"))
	assert.True(t, strings.HasPrefix(lines[3], " ✓ Third"))
	for i, line := range lines {
		assert.Equal(t, h.model.Width(), lipgloss.Width(line), "line %d", i)
	}
}

func TestViewTruncatesLongLabels(t *testing.T) {
	opts := []*Option{{Label: "An option label far wider than the box", Value: "long"}}
	m := NewSingle("long", opts, opts[0], nil)
	m.SetWidth(20)
	m.Click()

	for i, line := range plainLines(m.View()) {
		assert.Equal(t, 20, lipgloss.Width(line), "line %d", i)
		assert.Contains(t, line, "…", "line %d", i)
	}
}

func TestViewRendersBadges(t *testing.T) {
	h := newMultiHarness(0, 2)

	lines := plainLines(h.model.View())
	assert.True(t, strings.HasPrefix(lines[0], " First × Third ×"), lines[0])
	assert.Equal(t, DefaultWidth, lipgloss.Width(lines[0]))
}

func TestViewCollapsesOverflowingBadges(t *testing.T) {
	h := newMultiHarness(0, 1, 2)
	h.model.SetWidth(20)

	line := plainLines(h.model.View())[0]
	assert.True(t, strings.HasPrefix(line, " First × +2"), line)
	assert.Equal(t, 20, lipgloss.Width(line))
}

func TestViewTruncatedBadgeKeepsOverflowMarker(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		prefix string
	}{
		{"first badge shortened", 16, " Fi… × +2"},
		{"no room for any badge", minWidth, " +3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMultiHarness(0, 1, 2)
			h.model.SetWidth(tt.width)

			line := plainLines(h.model.View())[0]
			assert.True(t, strings.HasPrefix(line, tt.prefix), line)
			assert.Equal(t, tt.width, lipgloss.Width(line))
		})
	}
}

func TestViewEmptyList(t *testing.T) {
	m := NewMultiple("empty", nil, nil, nil)
	m.Click()

	lines := plainLines(m.View())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], emptyListText)
	assert.Equal(t, 2, m.Height())
}

func TestViewShowsScrolledWindow(t *testing.T) {
	h := newSingleHarness(-1)
	m := h.model
	m.SetMaxRows(2)
	m.Focus()
	m.HandleKey(keyDown)
	for range 4 {
		m.HandleKey(keyDown)
	}

	lines := plainLines(m.View())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Fourth")
	assert.Contains(t, lines[2], "Fifth")
}
