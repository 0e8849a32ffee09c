package selectbox

import (
	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultWidth is the container width in cells when none is configured.
	DefaultWidth = 40
	// DefaultMaxRows is the number of option rows shown before the list scrolls.
	DefaultMaxRows = 6

	minWidth = 12
)

// Model is a dropdown select. The selection value is owned by the caller:
// the model only reads it and proposes replacements through onChange. The
// caller hands the accepted value back with SetValue.
type Model[V any] struct {
	id       string
	options  []*Option
	mode     Mode[V]
	value    V
	onChange func(V)

	open        bool
	highlighted int
	offset      int
	hover       int
	focus       target

	width   int
	maxRows int
	originX int
	originY int

	keys   KeyMap
	styles *theme.Styles
}

// New builds a select over options. The mode decides the value type, so a
// slice cannot be handed to a single select or a lone option to a multiple one.
func New[V any](id string, options []*Option, mode Mode[V], value V, onChange func(V)) *Model[V] {
	return &Model[V]{
		id:       id,
		options:  options,
		mode:     mode,
		value:    value,
		onChange: onChange,
		hover:    -1,
		width:    DefaultWidth,
		maxRows:  DefaultMaxRows,
		keys:     DefaultKeyMap(),
		styles:   theme.Default(),
	}
}

// NewSingle builds a select holding at most one option.
func NewSingle(id string, options []*Option, value *Option, onChange func(*Option)) *Model[*Option] {
	return New(id, options, Single(), value, onChange)
}

// NewMultiple builds a select holding an ordered set of options.
func NewMultiple(id string, options []*Option, value []*Option, onChange func([]*Option)) *Model[[]*Option] {
	return New(id, options, Multiple(), value, onChange)
}

func (m *Model[V]) ID() string         { return m.id }
func (m *Model[V]) Options() []*Option { return m.options }
func (m *Model[V]) Value() V           { return m.value }
func (m *Model[V]) Multiple() bool     { return m.mode.Multiple() }
func (m *Model[V]) IsOpen() bool       { return m.open }
func (m *Model[V]) Highlighted() int   { return m.highlighted }
func (m *Model[V]) KeyMap() KeyMap     { return m.keys }

// SetValue replaces the displayed selection. It is the caller's half of the
// onChange round trip.
func (m *Model[V]) SetValue(value V) {
	m.value = value
	m.normalizeFocus()
}

// SetOptions swaps the option list. The highlight is clamped to the new list.
func (m *Model[V]) SetOptions(options []*Option) {
	m.options = options
	if m.highlighted >= len(options) {
		m.highlighted = len(options) - 1
	}
	if m.highlighted < 0 {
		m.highlighted = 0
	}
	m.ensureHighlightVisible()
}

// SetWidth sets the container width in cells.
func (m *Model[V]) SetWidth(width int) {
	if width < minWidth {
		width = minWidth
	}
	m.width = width
}

func (m *Model[V]) Width() int {
	if m.width < minWidth {
		return minWidth
	}
	return m.width
}

// SetMaxRows limits how many option rows are visible at once. Values <= 0
// show every option.
func (m *Model[V]) SetMaxRows(rows int) {
	m.maxRows = rows
	m.ensureHighlightVisible()
}

// SetOrigin records where the host drew the widget so mouse coordinates can be
// translated into widget space.
func (m *Model[V]) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

func (m *Model[V]) Origin() (int, int) {
	return m.originX, m.originY
}

// Click toggles the panel the way a click on the container does. The click
// also moves focus to the container.
func (m *Model[V]) Click() {
	m.setFocus(target{kind: targetContainer})
	if m.open {
		m.closePanel(events.CloseReasonToggle)
		return
	}
	m.openPanel(events.OpenTriggerClick)
}

// SelectOption applies the mode's toggle rule to option and reports the new
// value through onChange. Single mode ignores the current value and closes on
// change; multiple mode adds or removes option and stays open.
func (m *Model[V]) SelectOption(option *Option) {
	if option == nil {
		return
	}
	next, changed := m.mode.next(m.value, option)
	if !changed {
		return
	}
	m.emit(next)
	if m.mode.closesOnSelect() {
		m.closePanel(events.CloseReasonSelect)
	}
}

// ClearOptions asks for an empty selection: nil in single mode, an empty
// slice in multiple mode.
func (m *Model[V]) ClearOptions() {
	events.Select.Clear(m.id)
	m.emit(m.mode.cleared())
}

// IsOptionSelected reports whether option is part of the current selection.
func (m *Model[V]) IsOptionSelected(option *Option) bool {
	if option == nil {
		return false
	}
	return m.mode.contains(m.value, option)
}

// Badges returns the options rendered as removable badges. It is empty in
// single mode.
func (m *Model[V]) Badges() []*Option {
	return m.mode.badges(m.value)
}

// RemoveBadge removes the selected option shown as badge i.
func (m *Model[V]) RemoveBadge(i int) {
	badges := m.Badges()
	if i < 0 || i >= len(badges) {
		return
	}
	m.SelectOption(badges[i])
}

// Hover moves the highlight to the option under the mouse while the panel is open.
func (m *Model[V]) Hover(i int) {
	if !m.open || i < 0 || i >= len(m.options) || i == m.highlighted {
		return
	}
	m.highlighted = i
	events.Select.Highlight(m.id, i)
}

// Update handles key presses for the focused widget and mouse events that
// land on it.
func (m *Model[V]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.HandleKey(msg)
	case tea.MouseMsg:
		m.HandleMouse(msg)
	}
	return nil
}

func (m *Model[V]) openPanel(trigger events.OpenTrigger) {
	if m.open {
		return
	}
	m.open = true
	m.highlighted = 0
	m.offset = 0
	m.hover = -1
	events.Select.Open(m.id, trigger)
}

func (m *Model[V]) closePanel(reason events.CloseReason) {
	if !m.open {
		return
	}
	m.open = false
	events.Select.Close(m.id, reason)
}

func (m *Model[V]) moveHighlight(delta int) {
	next := m.highlighted + delta
	if next < 0 || next >= len(m.options) {
		return
	}
	m.highlighted = next
	m.ensureHighlightVisible()
	events.Select.Highlight(m.id, next)
}

func (m *Model[V]) emit(next V) {
	events.Select.Change(m.id, m.mode.labels(next))
	if m.onChange != nil {
		m.onChange(next)
	}
}
