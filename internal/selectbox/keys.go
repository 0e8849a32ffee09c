package selectbox

import (
	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap lists the bindings the widget reacts to.
type KeyMap struct {
	Confirm key.Binding
	Up      key.Binding
	Down    key.Binding
	Close   key.Binding
}

// DefaultKeyMap returns enter/space, arrow keys and escape.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "open/select"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Up, k.Down, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// HandleKey feeds a key press to the widget and reports whether it was used.
// Navigation only runs while the container holds focus; a focused clear
// control or badge answers to Confirm like a button and ignores the rest.
func (m *Model[V]) HandleKey(msg tea.KeyMsg) bool {
	switch m.focus.kind {
	case targetContainer:
		return m.handleContainerKey(msg)
	case targetClear:
		if key.Matches(msg, m.keys.Confirm) {
			m.ClearOptions()
			return true
		}
	case targetBadge:
		if key.Matches(msg, m.keys.Confirm) {
			m.RemoveBadge(m.focus.index)
			return true
		}
	}
	return false
}

func (m *Model[V]) handleContainerKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		// The decision uses the state before the toggle: confirming only
		// happens when closing an open panel.
		wasOpen := m.open
		if !wasOpen {
			m.openPanel(events.OpenTriggerKey)
			return true
		}
		if m.highlighted >= 0 && m.highlighted < len(m.options) {
			m.SelectOption(m.options[m.highlighted])
		}
		m.closePanel(events.CloseReasonConfirm)
		return true
	case key.Matches(msg, m.keys.Up, m.keys.Down):
		if !m.open {
			m.openPanel(events.OpenTriggerKey)
			return true
		}
		delta := 1
		if key.Matches(msg, m.keys.Up) {
			delta = -1
		}
		m.moveHighlight(delta)
		return true
	case key.Matches(msg, m.keys.Close):
		if !m.open {
			return false
		}
		m.closePanel(events.CloseReasonEscape)
		return true
	}
	return false
}
