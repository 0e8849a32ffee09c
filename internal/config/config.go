package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/app"
	"github.com/atomicstack/tmux-popup-select/internal/source"
	"github.com/atomicstack/tmux-popup-select/internal/tmux"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSource      = "TMUX_POPUP_SELECT_SOURCE"
	envOptionsFile = "TMUX_POPUP_SELECT_OPTIONS_FILE"
	envSocketPath  = tmux.SocketEnv
	envMode        = "TMUX_POPUP_SELECT_MODE"
	envWidth       = "TMUX_POPUP_SELECT_WIDTH"
	envRows        = "TMUX_POPUP_SELECT_ROWS"
	envShowFooter  = "TMUX_POPUP_SELECT_FOOTER"
	envPrint       = "TMUX_POPUP_SELECT_PRINT"
	envTrace       = "TMUX_POPUP_SELECT_TRACE"
	envLogFile     = "TMUX_POPUP_SELECT_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-popup-select", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	src := fs.String("source", envOrDefault(env, envSource, source.NameBuiltin), "option source: "+strings.Join(source.Names(), ", "))
	optionsFile := fs.String("options-file", envOrDefault(env, envOptionsFile, ""), "TOML file with options (used by -source file)")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	mode := fs.String("mode", envOrDefault(env, envMode, app.ModeBoth), "widgets to show: "+strings.Join(app.Modes(), ", "))
	width := fs.Int("width", envOrInt(env, envWidth, 0), "widget width in cells (0 follows the terminal width)")
	rows := fs.Int("rows", envOrInt(env, envRows, 0), "option rows visible before the list scrolls (0 uses the default)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key help (disabled by default)")
	printResult := fs.Bool("print", envOrBool(env, envPrint, true), "print the final selections on exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *rows < 0 {
		return Config{}, fmt.Errorf("rows must be >= 0 (got %d)", *rows)
	}
	normalizedMode := strings.ToLower(strings.TrimSpace(*mode))
	if !isMode(normalizedMode) {
		if guess := source.Suggest(normalizedMode, app.Modes()); guess != "" {
			return Config{}, fmt.Errorf("unknown mode %q (did you mean %q?)", *mode, guess)
		}
		return Config{}, fmt.Errorf("unknown mode %q (choose one of %s)", *mode, strings.Join(app.Modes(), ", "))
	}

	cfg := Config{
		App: app.Config{
			Source:      *src,
			OptionsFile: *optionsFile,
			SocketPath:  *socket,
			Mode:        normalizedMode,
			Width:       *width,
			Rows:        *rows,
			ShowFooter:  *footer,
			Print:       *printResult,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"source":      *src,
			"optionsFile": *optionsFile,
			"socket":      *socket,
			"mode":        normalizedMode,
			"width":       strconv.Itoa(*width),
			"rows":        strconv.Itoa(*rows),
			"footer":      strconv.FormatBool(*footer),
			"print":       strconv.FormatBool(*printResult),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func isMode(mode string) bool {
	for _, m := range app.Modes() {
		if m == mode {
			return true
		}
	}
	return false
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks settings that depend on each other.
func Validate(cfg Config) error {
	if _, err := source.Lookup(cfg.App.Source); err != nil {
		return err
	}
	name := strings.ToLower(strings.TrimSpace(cfg.App.Source))
	if name == source.NameFile && strings.TrimSpace(cfg.App.OptionsFile) == "" {
		return fmt.Errorf("-source %s requires -options-file", source.NameFile)
	}
	return nil
}
