package ui

import (
	"sync"

	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Widget is what the router needs from a mounted select. Both selectbox
// model instantiations satisfy it.
type Widget interface {
	ID() string
	View() string
	Height() int
	Width() int
	SetOrigin(x, y int)
	Contains(x, y int) bool
	HandleKey(tea.KeyMsg) bool
	HandleMouse(tea.MouseMsg) bool
	Focused() bool
	Focus()
	Blur()
	FocusFirst()
	FocusLast()
	FocusNext() bool
	FocusPrev() bool
}

type mount struct {
	handle string
	widget Widget
}

// Router delivers input to mounted widgets. Keys go to the focused widget
// only; mouse events go to the widget under the pointer. A widget stops
// receiving anything once its detach function has run.
type Router struct {
	mounts  []mount
	focused string
}

func NewRouter() *Router {
	return &Router{}
}

// Mount registers w after the already mounted widgets, which also places it
// last in tab order. The returned function detaches it and may be called more
// than once.
func (r *Router) Mount(w Widget) func() {
	handle := uuid.NewString()
	r.mounts = append(r.mounts, mount{handle: handle, widget: w})
	events.UI.Mount(w.ID(), handle)
	var once sync.Once
	return func() {
		once.Do(func() { r.detach(handle) })
	}
}

func (r *Router) detach(handle string) {
	for i, m := range r.mounts {
		if m.handle != handle {
			continue
		}
		if r.focused == handle {
			m.widget.Blur()
			r.focused = ""
		}
		r.mounts = append(r.mounts[:i], r.mounts[i+1:]...)
		events.UI.Detach(m.widget.ID(), handle)
		return
	}
}

// Widgets returns the mounted widgets in mount order.
func (r *Router) Widgets() []Widget {
	out := make([]Widget, len(r.mounts))
	for i, m := range r.mounts {
		out[i] = m.widget
	}
	return out
}

// Focused returns the widget holding focus, or nil.
func (r *Router) Focused() Widget {
	if i := r.index(r.focused); i >= 0 {
		return r.mounts[i].widget
	}
	return nil
}

// HandleKey passes msg to the focused widget.
func (r *Router) HandleKey(msg tea.KeyMsg) bool {
	w := r.Focused()
	if w == nil {
		return false
	}
	return w.HandleKey(msg)
}

// HandleMouse hit-tests msg against the mounted widgets. A left press goes to
// the widget under the pointer and focuses it; a press that lands on no widget
// blurs the focused one. Every other event reaches all widgets so each can
// track whether the pointer is over one of its rows.
func (r *Router) HandleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		handled := false
		for _, m := range r.mounts {
			if m.widget.HandleMouse(msg) {
				handled = true
			}
		}
		return handled
	}
	for _, m := range r.mounts {
		if !m.widget.Contains(msg.X, msg.Y) {
			continue
		}
		if m.handle != r.focused {
			r.blurFocused()
			r.focused = m.handle
			events.UI.Focus(m.widget.ID())
		}
		return m.widget.HandleMouse(msg)
	}
	return r.blurFocused()
}

// FocusNext moves focus to the next stop, stepping through a widget's own
// controls before moving to the next widget. Focus wraps around.
func (r *Router) FocusNext() bool {
	if len(r.mounts) == 0 {
		return false
	}
	i := r.index(r.focused)
	if i >= 0 && r.mounts[i].widget.FocusNext() {
		return true
	}
	next := 0
	if i >= 0 {
		next = (i + 1) % len(r.mounts)
	}
	r.enter(next, false)
	return true
}

// FocusPrev walks the focus ring backwards; see FocusNext.
func (r *Router) FocusPrev() bool {
	if len(r.mounts) == 0 {
		return false
	}
	i := r.index(r.focused)
	if i >= 0 && r.mounts[i].widget.FocusPrev() {
		return true
	}
	prev := len(r.mounts) - 1
	if i >= 0 {
		prev = (i - 1 + len(r.mounts)) % len(r.mounts)
	}
	r.enter(prev, true)
	return true
}

// FocusWidget gives w container focus. Unmounted widgets are ignored.
func (r *Router) FocusWidget(w Widget) bool {
	for _, m := range r.mounts {
		if m.widget != w {
			continue
		}
		if m.handle != r.focused {
			r.blurFocused()
		}
		r.focused = m.handle
		w.Focus()
		events.UI.Focus(w.ID())
		return true
	}
	return false
}

func (r *Router) enter(i int, fromEnd bool) {
	target := r.mounts[i]
	if target.handle != r.focused {
		r.blurFocused()
	}
	r.focused = target.handle
	if fromEnd {
		target.widget.FocusLast()
	} else {
		target.widget.FocusFirst()
	}
	events.UI.Focus(target.widget.ID())
}

func (r *Router) blurFocused() bool {
	w := r.Focused()
	r.focused = ""
	if w == nil {
		return false
	}
	w.Blur()
	return true
}

func (r *Router) index(handle string) int {
	if handle == "" {
		return -1
	}
	for i, m := range r.mounts {
		if m.handle == handle {
			return i
		}
	}
	return -1
}
