package selectbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	clearGlyph    = "×"
	dividerGlyph  = "│"
	caretClosed   = "▾"
	caretOpen     = "▴"
	selectedMark  = "✓"
	emptyListText = "(no options)"

	// controlsWidth covers " × │ ▾ " to the right of the value region.
	controlsWidth = 7
)

type zoneKind int

const (
	zoneContainer zoneKind = iota + 1
	zoneBadge
	zoneClear
	zoneOption
)

// zone is a clickable cell range on one row, in widget coordinates.
type zone struct {
	kind  zoneKind
	index int
	x     int
	y     int
	width int
}

func (z zone) contains(x, y int) bool {
	return y == z.y && x >= z.x && x < z.x+z.width
}

type segment struct {
	text  string
	style *lipgloss.Style
}

// frame is the laid-out widget: the rows to draw and the zones mouse presses
// resolve against. View and hit testing share it so they cannot drift apart.
type frame struct {
	rows  [][]segment
	zones []zone
}

// View renders the container row and, while open, the option list below it.
func (m *Model[V]) View() string {
	f := m.layout()
	lines := make([]string, len(f.rows))
	for i, row := range f.rows {
		var b strings.Builder
		for _, seg := range row {
			if seg.style == nil {
				b.WriteString(seg.text)
				continue
			}
			b.WriteString(seg.style.Render(seg.text))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Height is the number of rows View produces.
func (m *Model[V]) Height() int {
	if !m.open {
		return 1
	}
	if len(m.options) == 0 {
		return 2
	}
	return 1 + m.visibleRows()
}

func (m *Model[V]) layout() frame {
	width := m.Width()
	valueWidth := width - controlsWidth - 1
	base := m.styles.Container
	if m.focus.kind == targetContainer {
		base = m.styles.ContainerFocused
	}

	var f frame
	f.zones = append(f.zones, zone{kind: zoneContainer, width: width})

	row := []segment{{text: " ", style: base}}
	row = append(row, m.valueSegments(valueWidth, base, &f)...)

	clearStyle := m.styles.Clear
	if m.focus.kind == targetClear {
		clearStyle = m.styles.ClearFocused
	}
	caret := caretClosed
	if m.open {
		caret = caretOpen
	}
	clearX := 1 + valueWidth + 1
	row = append(row,
		segment{text: " ", style: base},
		segment{text: clearGlyph, style: over(clearStyle, base)},
		segment{text: " ", style: base},
		segment{text: dividerGlyph, style: over(m.styles.Divider, base)},
		segment{text: " ", style: base},
		segment{text: caret, style: over(m.styles.Caret, base)},
		segment{text: " ", style: base},
	)
	f.zones = append(f.zones, zone{kind: zoneClear, x: clearX - 1, width: 3})
	f.rows = append(f.rows, row)

	if m.open {
		m.optionRows(width, &f)
	}
	return f
}

func (m *Model[V]) valueSegments(width int, base *lipgloss.Style, f *frame) []segment {
	if !m.mode.Multiple() {
		label := ""
		if labels := m.mode.labels(m.value); len(labels) > 0 {
			label = labels[0]
		}
		return []segment{{text: pad(fit(label, width), width), style: over(m.styles.Value, base)}}
	}

	badges := m.Badges()
	segs := make([]segment, 0, len(badges)*3+2)
	x := 1
	remaining := width
	shown := 0
	total := -1
	for _, b := range badges {
		total += lipgloss.Width(b.Label) + 3
	}
	fitsAll := total <= width
	for i, b := range badges {
		gap := 0
		if shown > 0 {
			gap = 1
		}
		label := b.Label
		w := lipgloss.Width(label) + 2
		// Leave room for the marker counting the badges after this one.
		reserve := 0
		if !fitsAll {
			reserve = markerWidth(len(badges) - i - 1)
		}
		if gap+w+reserve > remaining {
			avail := remaining - reserve
			if shown > 0 || avail < 3 {
				break
			}
			label = fit(label, avail-2)
			w = lipgloss.Width(label) + 2
		}
		if gap > 0 {
			segs = append(segs, segment{text: " ", style: base})
			x++
			remaining--
		}
		labelStyle := m.styles.Badge
		if m.focus.kind == targetBadge && m.focus.index == i {
			labelStyle = m.styles.BadgeFocused
		}
		segs = append(segs,
			segment{text: label, style: labelStyle},
			segment{text: " " + clearGlyph, style: m.styles.BadgeRemove},
		)
		f.zones = append(f.zones, zone{kind: zoneBadge, index: i, x: x, width: w})
		x += w
		remaining -= w
		shown++
	}
	if hidden := len(badges) - shown; hidden > 0 {
		marker := fmt.Sprintf("+%d", hidden)
		need := lipgloss.Width(marker)
		if shown > 0 {
			need++
		}
		if need <= remaining {
			if shown > 0 {
				marker = " " + marker
			}
			segs = append(segs, segment{text: marker, style: over(m.styles.Overflow, base)})
			remaining -= need
		}
	}
	if remaining > 0 {
		segs = append(segs, segment{text: strings.Repeat(" ", remaining), style: base})
	}
	return segs
}

// markerWidth is the width of " +n", or zero when nothing is hidden.
func markerWidth(hidden int) int {
	if hidden <= 0 {
		return 0
	}
	return len(fmt.Sprintf("+%d", hidden)) + 1
}

func (m *Model[V]) optionRows(width int, f *frame) {
	if len(m.options) == 0 {
		f.rows = append(f.rows, []segment{{text: pad(fit(" "+emptyListText, width), width), style: m.styles.Empty}})
		return
	}
	start := m.offset
	if start > m.maxOffset() {
		start = m.maxOffset()
	}
	end := start + m.visibleRows()
	for i := start; i < end; i++ {
		o := m.options[i]
		mark := " "
		style := m.styles.Option
		if m.IsOptionSelected(o) {
			mark = selectedMark
			style = m.styles.OptionSelected
		}
		if i == m.highlighted {
			style = m.styles.OptionHighlighted
		}
		y := len(f.rows)
		f.rows = append(f.rows, []segment{{text: pad(fit(" "+mark+" "+o.Label, width), width), style: style}})
		f.zones = append(f.zones, zone{kind: zoneOption, index: i, y: y, width: width})
	}
}

// zoneAt resolves a widget-relative cell. Later zones are more specific, so
// they win; cells inside the widget with no zone belong to the container.
func (m *Model[V]) zoneAt(x, y int) zone {
	f := m.layout()
	for i := len(f.zones) - 1; i >= 0; i-- {
		if f.zones[i].contains(x, y) {
			return f.zones[i]
		}
	}
	return zone{kind: zoneContainer}
}

func over(style, base *lipgloss.Style) *lipgloss.Style {
	if style == nil {
		return base
	}
	if base == nil {
		return style
	}
	merged := style.Inherit(*base)
	return &merged
}

func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

func pad(text string, width int) string {
	if w := lipgloss.Width(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}
