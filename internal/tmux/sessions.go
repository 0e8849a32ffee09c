package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// SocketEnv overrides the tmux socket when no flag is given.
const SocketEnv = "TMUX_POPUP_SELECT_SOCKET"

// FetchSessions lists the sessions on the server behind socketPath, in the
// order tmux reports them.
func FetchSessions(socketPath string) (SessionSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return SessionSnapshot{}, err
	}
	defer client.Close()

	sessions, err := client.ListSessions()
	if err != nil {
		return SessionSnapshot{}, err
	}
	currentName := currentSessionName(client)
	realClients := realAttachedClients(client)
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s == nil || s.Name == "" {
			continue
		}
		clients := realClients[s.Name]
		if realClients == nil {
			clients = append([]string(nil), s.AttachedList...)
		}
		out = append(out, Session{
			Name:     s.Name,
			Label:    sessionLabel(s.Name, s.Windows, len(clients) > 0),
			Attached: len(clients) > 0,
			Clients:  clients,
			Current:  s.Name == currentName,
			Windows:  s.Windows,
		})
	}
	return SessionSnapshot{Sessions: out, Current: currentName}, nil
}

func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv(SocketEnv); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func sessionLabel(name string, windows int, attached bool) string {
	label := fmt.Sprintf("%s: %d window", name, windows)
	if windows != 1 {
		label += "s"
	}
	if attached {
		label += " (attached)"
	}
	return label
}

// realAttachedClients maps session names to attached clients, leaving out
// control-mode connections such as our own. It returns nil when clients cannot
// be listed.
func realAttachedClients(client tmuxClient) map[string][]string {
	clients, err := client.ListClients()
	if err != nil {
		return nil
	}
	result := make(map[string][]string)
	for _, c := range clients {
		if !isRealClient(c) {
			continue
		}
		result[c.Session] = append(result[c.Session], c.Name)
	}
	return result
}

func isRealClient(c *gotmux.Client) bool {
	return c != nil && !c.ControlMode && c.Session != ""
}

func currentSessionName(client tmuxClient) string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if clients, err := client.ListClients(); err == nil {
		for _, c := range clients {
			if isRealClient(c) {
				return c.Session
			}
		}
	}
	return ""
}
