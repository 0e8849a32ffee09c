package ui

import (
	"reflect"
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/selectbox"
	"github.com/atomicstack/tmux-popup-select/internal/source"
	"github.com/atomicstack/tmux-popup-select/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	singleWidgetID   = "single"
	multipleWidgetID = "multiple"

	singleTitle   = "Single select"
	multipleTitle = "Multiple select"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options picks which widgets are shown and how they are sized.
type Options struct {
	Single     bool
	Multiple   bool
	Width      int
	Rows       int
	ShowFooter bool
}

type panel struct {
	title  string
	widget Widget
}

// Model implements the Bubble Tea model hosting the select widgets. It owns
// the selections; the widgets only propose new values.
type Model struct {
	set      source.Set
	single   *selectbox.Option
	multiple []*selectbox.Option

	singleBox   *selectbox.Model[*selectbox.Option]
	multipleBox *selectbox.Model[[]*selectbox.Option]

	panels  []panel
	router  *Router
	detach  []func()
	changes int

	keys       keyMap
	help       help.Model
	showFooter bool
	width      int
	height     int
	fixedWidth bool
	quitting   bool

	handlers map[reflect.Type]msgHandler
}

type keyMap struct {
	widget selectbox.KeyMap
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

func defaultKeyMap(widget selectbox.KeyMap) keyMap {
	return keyMap{
		widget: widget,
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.widget.ShortHelp(), k.Next, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.widget.ShortHelp(), {k.Next, k.Prev, k.Quit}}
}

// NewModel mounts a widget per enabled mode over the options in set. With
// neither mode enabled both are shown.
func NewModel(set source.Set, opts Options) *Model {
	if !opts.Single && !opts.Multiple {
		opts.Single, opts.Multiple = true, true
	}
	m := &Model{
		set:        set,
		single:     set.Single,
		multiple:   set.Multiple,
		router:     NewRouter(),
		help:       help.New(),
		showFooter: opts.ShowFooter,
	}
	if m.multiple == nil {
		m.multiple = []*selectbox.Option{}
	}
	if opts.Multiple {
		m.multipleBox = selectbox.NewMultiple(multipleWidgetID, set.Options, m.multiple, m.setMultiple)
		m.mountPanel(multipleTitle, m.multipleBox, opts)
	}
	if opts.Single {
		m.singleBox = selectbox.NewSingle(singleWidgetID, set.Options, m.single, m.setSingle)
		m.mountPanel(singleTitle, m.singleBox, opts)
	}
	if opts.Width > 0 {
		m.fixedWidth = true
	}
	m.keys = defaultKeyMap(selectbox.DefaultKeyMap())
	if first := m.router.Widgets(); len(first) > 0 {
		m.router.FocusWidget(first[0])
	}
	m.registerHandlers()
	m.syncOrigins()
	return m
}

func (m *Model) mountPanel(title string, w interface {
	Widget
	SetWidth(int)
	SetMaxRows(int)
}, opts Options) {
	if opts.Width > 0 {
		w.SetWidth(opts.Width)
	}
	if opts.Rows > 0 {
		w.SetMaxRows(opts.Rows)
	}
	m.panels = append(m.panels, panel{title: title, widget: w})
	m.detach = append(m.detach, m.router.Mount(w))
}

// setSingle and setMultiple are the onChange callbacks: accept the proposed
// value and hand it back to the widget.
func (m *Model) setSingle(next *selectbox.Option) {
	m.single = next
	m.changes++
	m.singleBox.SetValue(next)
}

func (m *Model) setMultiple(next []*selectbox.Option) {
	m.multiple = next
	m.changes++
	m.multipleBox.SetValue(next)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	m.syncOrigins()
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.router.HandleKey(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Next):
		m.router.FocusNext()
	case key.Matches(keyMsg, m.keys.Prev):
		m.router.FocusPrev()
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	m.router.HandleMouse(mouse)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	m.help.Width = resize.Width
	events.UI.Resize(resize.Width, resize.Height)
	if !m.fixedWidth && resize.Width > 0 {
		for _, p := range m.panels {
			if s, ok := p.widget.(interface{ SetWidth(int) }); ok {
				s.SetWidth(resize.Width - 2*marginX)
			}
		}
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	for _, detach := range m.detach {
		detach()
	}
	r := m.Result()
	events.App.Exit(r.singleKey(), r.multipleKeys())
	return tea.Quit
}

// Changes counts accepted onChange proposals.
func (m *Model) Changes() int {
	return m.changes
}

// Router exposes the input router, mainly for tests.
func (m *Model) Router() *Router {
	return m.router
}

// Result is the selection state when the program ended.
type Result struct {
	ShowSingle   bool
	ShowMultiple bool
	Single       *selectbox.Option
	Multiple     []*selectbox.Option
}

// Result returns the current selections.
func (m *Model) Result() Result {
	return Result{
		ShowSingle:   m.singleBox != nil,
		ShowMultiple: m.multipleBox != nil,
		Single:       m.single,
		Multiple:     m.multiple,
	}
}

// Lines renders r as key=value lines for shell consumption, skipping widgets
// that were not shown.
func (r Result) Lines() []string {
	var lines []string
	if r.ShowSingle {
		lines = append(lines, "single="+r.singleKey())
	}
	if r.ShowMultiple {
		lines = append(lines, "multiple="+joinKeys(r.multipleKeys()))
	}
	return lines
}

func (r Result) singleKey() string {
	return r.Single.Key()
}

func (r Result) multipleKeys() []string {
	keys := make([]string, 0, len(r.Multiple))
	for _, o := range r.Multiple {
		keys = append(keys, o.Key())
	}
	return keys
}

func joinKeys(keys []string) string {
	return strings.Join(keys, ",")
}
