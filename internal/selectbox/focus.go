package selectbox

import (
	"fmt"

	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
)

type targetKind int

const (
	targetNone targetKind = iota
	targetContainer
	targetBadge
	targetClear
)

// target is the element holding keyboard focus inside the widget. Badges are
// addressed by their position in the selection.
type target struct {
	kind  targetKind
	index int
}

func (t target) String() string {
	switch t.kind {
	case targetContainer:
		return "container"
	case targetBadge:
		return fmt.Sprintf("badge:%d", t.index)
	case targetClear:
		return "clear"
	default:
		return "none"
	}
}

// Focused reports whether the container or one of its controls holds focus.
func (m *Model[V]) Focused() bool {
	return m.focus.kind != targetNone
}

// ContainerFocused reports whether the container itself holds focus, which is
// the only state in which navigation keys are handled.
func (m *Model[V]) ContainerFocused() bool {
	return m.focus.kind == targetContainer
}

// Focus moves focus to the container.
func (m *Model[V]) Focus() {
	m.setFocus(target{kind: targetContainer})
}

// Blur drops focus. The panel always closes.
func (m *Model[V]) Blur() {
	m.setFocus(target{})
	m.closePanel(events.CloseReasonBlur)
}

// FocusFirst focuses the first stop in tab order (the container).
func (m *Model[V]) FocusFirst() {
	m.Focus()
}

// FocusLast focuses the last stop in tab order (the clear control).
func (m *Model[V]) FocusLast() {
	m.setFocus(target{kind: targetClear})
}

// FocusNext advances focus along container, badges, clear. It returns false
// when focus would leave the widget, leaving the current stop untouched.
func (m *Model[V]) FocusNext() bool {
	stops := m.focusStops()
	if m.focus.kind == targetNone {
		m.setFocus(stops[0])
		return true
	}
	for i, stop := range stops {
		if stop == m.focus {
			if i+1 >= len(stops) {
				return false
			}
			m.setFocus(stops[i+1])
			return true
		}
	}
	return false
}

// FocusPrev walks the tab order backwards; see FocusNext.
func (m *Model[V]) FocusPrev() bool {
	stops := m.focusStops()
	if m.focus.kind == targetNone {
		m.setFocus(stops[len(stops)-1])
		return true
	}
	for i, stop := range stops {
		if stop == m.focus {
			if i == 0 {
				return false
			}
			m.setFocus(stops[i-1])
			return true
		}
	}
	return false
}

func (m *Model[V]) focusStops() []target {
	badges := m.Badges()
	stops := make([]target, 0, len(badges)+2)
	stops = append(stops, target{kind: targetContainer})
	for i := range badges {
		stops = append(stops, target{kind: targetBadge, index: i})
	}
	return append(stops, target{kind: targetClear})
}

// setFocus moves focus. Anything other than the container counts as the
// container losing focus, which closes the panel.
func (m *Model[V]) setFocus(t target) {
	if t == m.focus {
		return
	}
	if t.kind != targetContainer {
		m.closePanel(events.CloseReasonBlur)
	}
	m.focus = t
	events.Select.Focus(m.id, t.String())
}

// normalizeFocus keeps a focused badge valid after the selection shrinks.
func (m *Model[V]) normalizeFocus() {
	if m.focus.kind != targetBadge {
		return
	}
	if n := len(m.Badges()); m.focus.index >= n {
		if n > 0 {
			m.focus.index = n - 1
			return
		}
		m.focus = target{kind: targetClear}
	}
}
