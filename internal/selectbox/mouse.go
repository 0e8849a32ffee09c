package selectbox

import tea "github.com/charmbracelet/bubbletea"

// Contains reports whether the screen cell (x, y) falls inside the widget as
// last positioned with SetOrigin.
func (m *Model[V]) Contains(x, y int) bool {
	lx, ly := x-m.originX, y-m.originY
	return lx >= 0 && lx < m.Width() && ly >= 0 && ly < m.Height()
}

// HandleMouse feeds a mouse event in screen coordinates to the widget and
// reports whether it was used. Presses on an option, a badge or the clear
// control never reach the container toggle.
func (m *Model[V]) HandleMouse(msg tea.MouseMsg) bool {
	if !m.Contains(msg.X, msg.Y) {
		m.hover = -1
		return false
	}
	z := m.zoneAt(msg.X-m.originX, msg.Y-m.originY)
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if !m.open {
			return false
		}
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		return m.scroll(delta)
	case msg.Action == tea.MouseActionMotion:
		// Entering a row highlights it; moving inside the same row does not,
		// so arrow keys keep the highlight until the pointer crosses rows.
		if z.kind != zoneOption {
			m.hover = -1
			return false
		}
		if z.index == m.hover {
			return false
		}
		m.hover = z.index
		m.Hover(z.index)
		return true
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.press(z)
		return true
	}
	return false
}

func (m *Model[V]) press(z zone) {
	switch z.kind {
	case zoneOption:
		m.setFocus(target{kind: targetContainer})
		if z.index < len(m.options) {
			m.SelectOption(m.options[z.index])
		}
	case zoneClear:
		m.setFocus(target{kind: targetClear})
		m.ClearOptions()
	case zoneBadge:
		badges := m.Badges()
		if z.index >= len(badges) {
			return
		}
		option := badges[z.index]
		m.setFocus(target{kind: targetBadge, index: z.index})
		m.SelectOption(option)
	default:
		m.Click()
	}
}
