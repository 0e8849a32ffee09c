package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/app"
	"github.com/atomicstack/tmux-popup-select/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Source:     "builtin",
			SocketPath: "socket-path",
			Mode:       app.ModeBoth,
			Width:      80,
			Rows:       4,
			ShowFooter: true,
			Print:      true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"source": "builtin",
			"socket": "socket-path",
			"width":  "80",
			"rows":   "4",
			"footer": "true",
			"print":  "true",
		},
		Args: []string{"--socket", "socket-path"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["socket"] != "socket-path" {
		t.Fatalf("expected socket flag %q, got %v", "socket-path", flagsValue["socket"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["rows"] != "4" {
		t.Fatalf("expected rows 4, got %v", flagsValue["rows"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func withRunApp(t *testing.T, fn func(app.Config) error) *[]app.Config {
	t.Helper()
	prev := runApp
	var calls []app.Config
	runApp = func(cfg app.Config) error {
		calls = append(calls, cfg)
		return fn(cfg)
	}
	t.Cleanup(func() { runApp = prev })
	return &calls
}

func TestRunExitCodes(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "select.log")

	calls := withRunApp(t, func(app.Config) error { return nil })
	if code := run([]string{"-log-file", logFile, "-mode", "single"}, nil); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if len(*calls) != 1 || (*calls)[0].Mode != app.ModeSingle {
		t.Fatalf("expected one run in single mode, got %+v", *calls)
	}

	if code := run([]string{"-mode", "nope"}, nil); code != 2 {
		t.Fatalf("expected exit 2 for a bad mode, got %d", code)
	}
	if code := run([]string{"-source", "file"}, nil); code != 2 {
		t.Fatalf("expected exit 2 without an options file, got %d", code)
	}
	if len(*calls) != 1 {
		t.Fatalf("configuration errors must not start the program")
	}

	withRunApp(t, func(app.Config) error { return errors.New("boom") })
	if code := run([]string{"-log-file", logFile}, nil); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestTTYDetailsForRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "probe")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()

	got := probeTTY("file", f)
	if got.IsTerminal || got.Error != "" || got.Name != "file" {
		t.Fatalf("expected a non-terminal probe, got %+v", got)
	}
	if nilProbe := probeTTY("closed", nil); nilProbe.Error == "" {
		t.Fatalf("expected an error for a nil file")
	}
}
