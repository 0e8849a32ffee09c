package selectbox

// visibleRows returns how many option rows the open panel shows.
func (m *Model[V]) visibleRows() int {
	total := len(m.options)
	if total == 0 {
		return 0
	}
	rows := m.maxRows
	if rows <= 0 || rows > total {
		rows = total
	}
	return rows
}

func (m *Model[V]) maxOffset() int {
	if off := len(m.options) - m.visibleRows(); off > 0 {
		return off
	}
	return 0
}

// ensureHighlightVisible adjusts the list offset so the highlighted row stays
// inside the visible window.
func (m *Model[V]) ensureHighlightVisible() {
	rows := m.visibleRows()
	if rows == 0 {
		m.offset = 0
		return
	}
	maxOffset := m.maxOffset()
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
	if m.highlighted < m.offset {
		m.offset = m.highlighted
	}
	upper := m.offset + rows - 1
	if m.highlighted > upper {
		m.offset = m.highlighted - rows + 1
		if m.offset < 0 {
			m.offset = 0
		}
		if m.offset > maxOffset {
			m.offset = maxOffset
		}
	}
}

// scroll moves the visible window without touching the highlight.
func (m *Model[V]) scroll(delta int) bool {
	old := m.offset
	m.offset += delta
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
	if m.offset < 0 {
		m.offset = 0
	}
	return m.offset != old
}

// Offset returns the index of the first visible option row.
func (m *Model[V]) Offset() int {
	return m.offset
}
