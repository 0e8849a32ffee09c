// Package source produces the option lists and initial selections the host
// program feeds into its select widgets.
package source

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/selectbox"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	NameBuiltin      = "builtin"
	NameFile         = "file"
	NameTmuxSessions = "tmux-sessions"
)

// Set is an option list with the initial value for each widget mode. Single
// and Multiple always point into Options.
type Set struct {
	Name     string
	Options  []*selectbox.Option
	Single   *selectbox.Option
	Multiple []*selectbox.Option
}

// Params carries what the individual sources need to locate their data.
type Params struct {
	File   string
	Socket string
}

// Loader builds a Set.
type Loader func(Params) (Set, error)

var loaders = map[string]Loader{
	NameBuiltin: func(Params) (Set, error) { return Builtin(), nil },
	NameFile: func(p Params) (Set, error) {
		if strings.TrimSpace(p.File) == "" {
			return Set{}, fmt.Errorf("source %q needs an options file", NameFile)
		}
		return LoadFile(p.File)
	},
	NameTmuxSessions: func(p Params) (Set, error) { return TmuxSessions(p.Socket) },
}

// Names lists the known sources in sorted order.
func Names() []string {
	names := make([]string, 0, len(loaders))
	for name := range loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the loader registered under name.
func Lookup(name string) (Loader, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = NameBuiltin
	}
	if loader, ok := loaders[key]; ok {
		return loader, nil
	}
	if guess := Suggest(key, Names()); guess != "" {
		return nil, fmt.Errorf("unknown source %q (did you mean %q?)", name, guess)
	}
	return nil, fmt.Errorf("unknown source %q (choose one of %s)", name, strings.Join(Names(), ", "))
}

// Load resolves name and runs its loader.
func Load(name string, p Params) (Set, error) {
	loader, err := Lookup(name)
	if err != nil {
		return Set{}, err
	}
	set, err := loader(p)
	if err != nil {
		return Set{}, err
	}
	if set.Name == "" {
		set.Name = strings.ToLower(strings.TrimSpace(name))
	}
	return set, nil
}

// Suggest returns the candidate closest to input, or "" when none is close.
func Suggest(input string, candidates []string) string {
	ranks := fuzzy.RankFindNormalizedFold(input, candidates)
	if len(ranks) == 0 {
		// Fall back to matching the other way round so typos with extra
		// characters ("builtins") still find a candidate.
		for _, c := range candidates {
			if fuzzy.MatchNormalizedFold(c, input) {
				return c
			}
		}
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func byKey(options []*selectbox.Option, key string) *selectbox.Option {
	for _, o := range options {
		if o.Key() == key {
			return o
		}
	}
	return nil
}
