package source

import (
	"fmt"

	"github.com/atomicstack/tmux-popup-select/internal/selectbox"
	"github.com/atomicstack/tmux-popup-select/internal/tmux"
)

var fetchSessions = tmux.FetchSessions

// TmuxSessions offers the sessions of a tmux server, valued by session name.
// The current session starts selected.
func TmuxSessions(socketPath string) (Set, error) {
	socket, err := tmux.ResolveSocketPath(socketPath)
	if err != nil {
		return Set{}, fmt.Errorf("resolve tmux socket: %w", err)
	}
	snap, err := fetchSessions(socket)
	if err != nil {
		return Set{}, fmt.Errorf("list tmux sessions: %w", err)
	}
	set := Set{Name: NameTmuxSessions, Multiple: []*selectbox.Option{}}
	for _, s := range snap.Sessions {
		opt := &selectbox.Option{Label: s.Label, Value: s.Name}
		set.Options = append(set.Options, opt)
		if s.Current {
			set.Single = opt
			set.Multiple = append(set.Multiple, opt)
		}
	}
	return set, nil
}
