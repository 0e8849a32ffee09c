package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/source"
	"github.com/atomicstack/tmux-popup-select/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ModeBoth     = "both"
	ModeSingle   = "single"
	ModeMultiple = "multiple"
)

// Modes lists the accepted values of Config.Mode.
func Modes() []string {
	return []string{ModeBoth, ModeSingle, ModeMultiple}
}

// Config describes user-provided application options.
type Config struct {
	Source      string
	OptionsFile string
	SocketPath  string
	Mode        string
	Width       int
	Rows        int
	ShowFooter  bool
	Print       bool
	Output      io.Writer
}

var runProgram = func(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	return program.Run()
}

// Run bootstraps and executes the Bubble Tea program. When cfg.Print is set
// the final selections are written to cfg.Output (stdout by default).
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	final, err := runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	if !cfg.Print {
		return nil
	}
	if m, ok := final.(*ui.Model); ok {
		model = m
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	for _, line := range model.Result().Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}

// NewModel loads the configured option source and builds the UI model.
func NewModel(cfg Config) (*ui.Model, error) {
	set, err := source.Load(cfg.Source, source.Params{File: cfg.OptionsFile, Socket: cfg.SocketPath})
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	events.App.SourceLoaded(set.Name, len(set.Options))
	opts := ui.Options{
		Width:      cfg.Width,
		Rows:       cfg.Rows,
		ShowFooter: cfg.ShowFooter,
	}
	switch cfg.Mode {
	case ModeSingle:
		opts.Single = true
	case ModeMultiple:
		opts.Multiple = true
	default:
		opts.Single, opts.Multiple = true, true
	}
	return ui.NewModel(set, opts), nil
}
