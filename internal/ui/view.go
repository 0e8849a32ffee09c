package ui

import (
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/selectbox"
	"github.com/charmbracelet/x/ansi"
)

const (
	marginX = 1
	// Each panel is a title row, the widget, then a blank spacer row.
	titleRows  = 1
	spacerRows = 1
)

// View renders the panels top to bottom, then the current selections and the
// optional help footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.syncOrigins()
	pad := strings.Repeat(" ", marginX)
	lines := make([]string, 0, 16)
	for _, p := range m.panels {
		lines = append(lines, pad+styles.Title.Render(m.clip(p.title)))
		for _, row := range strings.Split(p.widget.View(), "\n") {
			lines = append(lines, pad+row)
		}
		lines = append(lines, "")
	}
	for _, summary := range m.summaryLines() {
		lines = append(lines, pad+styles.Footer.Render(m.clip(summary)))
	}
	if m.showFooter {
		lines = append(lines, "", pad+m.help.View(m.keys))
	}
	return strings.Join(lines, "\n")
}

// syncOrigins places every widget where View draws it. Open lists push the
// panels below them down, so this runs after every update.
func (m *Model) syncOrigins() {
	y := 0
	for _, p := range m.panels {
		y += titleRows
		p.widget.SetOrigin(marginX, y)
		y += p.widget.Height() + spacerRows
	}
}

func (m *Model) summaryLines() []string {
	var lines []string
	if m.multipleBox != nil {
		lines = append(lines, "multiple: "+labelList(m.multiple))
	}
	if m.singleBox != nil {
		label := "(none)"
		if m.single != nil {
			label = m.single.Label
		}
		lines = append(lines, "single: "+label)
	}
	if m.set.Name != "" {
		lines = append(lines, "source: "+m.set.Name)
	}
	return lines
}

func labelList(opts []*selectbox.Option) string {
	if len(opts) == 0 {
		return "(none)"
	}
	return strings.Join(selectbox.Labels(opts), ", ")
}

func (m *Model) clip(text string) string {
	if m.width <= 2*marginX {
		return text
	}
	return ansi.Truncate(text, m.width-2*marginX, "…")
}
