// Package testutil starts throwaway tmux servers for integration tests.
package testutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

const seedSession = "tmux-popup-select-test"

// StartTmuxServer boots a tmux server on a socket in a fresh temp dir and
// returns the socket path. The server is killed when the test ends. Tests are
// skipped when tmux is missing or refuses to start.
func StartTmuxServer(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("skipping: tmux binary not available")
	}
	// Short base dir: unix socket paths are length limited.
	dir, err := os.MkdirTemp("/tmp", "tps-*")
	if err != nil {
		t.Fatalf("create socket dir: %v", err)
	}
	socket := filepath.Join(dir, "tmux.sock")
	t.Cleanup(func() {
		killServer(t, socket)
		_ = os.RemoveAll(dir)
	})
	if err := tmux(socket, "-f", "/dev/null", "new-session", "-d", "-s", seedSession, "sleep", "600").Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	return socket
}

// NewSession creates a detached session and waits until tmux lists it.
func NewSession(t *testing.T, socket, name string) {
	t.Helper()
	if err := tmux(socket, "new-session", "-d", "-s", name, "sleep", "600").Run(); err != nil {
		t.Fatalf("new-session %s: %v", name, err)
	}
	for deadline := time.Now().Add(2 * time.Second); time.Now().Before(deadline); time.Sleep(50 * time.Millisecond) {
		if slices.Contains(SessionNames(t, socket), name) {
			return
		}
	}
	t.Fatalf("session %s never appeared on %s", name, socket)
}

// SessionNames lists the sessions tmux reports on socket.
func SessionNames(t *testing.T, socket string) []string {
	t.Helper()
	out, err := tmux(socket, "list-sessions", "-F", "#{session_name}").Output()
	if err != nil {
		return nil
	}
	return strings.Fields(string(out))
}

// tmux builds a command against socket that ignores any tmux the test itself
// runs inside.
func tmux(socket string, args ...string) *exec.Cmd {
	cmd := exec.Command("tmux", append([]string{"-S", socket}, args...)...)
	env := slices.DeleteFunc(os.Environ(), func(e string) bool {
		return strings.HasPrefix(e, "TMUX=") || strings.HasPrefix(e, "TMUX_TMPDIR=")
	})
	cmd.Env = append(env, "TMUX_TMPDIR="+filepath.Dir(socket))
	return cmd
}

func killServer(t *testing.T, socket string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := gotmux.NewTmuxWithOptions(socket, gotmux.WithContext(ctx))
	if err == nil {
		defer client.Close()
		if err = client.KillServer(); err == nil {
			return
		}
	}
	t.Logf("control-mode kill on %s failed: %v; using kill-server", socket, err)
	_ = tmux(socket, "kill-server").Run()
}
