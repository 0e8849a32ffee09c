package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "select.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
		_ = Close()
	})
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	if err := Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := useTempLog(t)
	if got := Path(); got != path {
		t.Fatalf("expected path %q, got %q", path, got)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory to exist: %v", err)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("   ")
	t.Cleanup(func() { Configure("") })
	if got := Path(); got != defaultLogFile {
		t.Fatalf("expected default log file, got %q", got)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("select.open", map[string]interface{}{"id": "x"})
	if err := Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file when tracing is disabled, stat err = %v", err)
	}
}

func TestTraceWritesJSONEntry(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	if !TraceEnabled() {
		t.Fatalf("expected trace to be enabled")
	}
	Trace("select.open", map[string]interface{}{"id": "fruit", "trigger": "click"})

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(lines), lines)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON entry: %v", err)
	}
	if entry.Event != "select.open" {
		t.Fatalf("expected event select.open, got %q", entry.Event)
	}
	if entry.Payload["trigger"] != "click" {
		t.Fatalf("expected trigger click, got %v", entry.Payload["trigger"])
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("boom"))
	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected a single error line, got %v", lines)
	}
	if !strings.HasSuffix(lines[0], "boom") {
		t.Fatalf("expected error text in line, got %q", lines[0])
	}
}
