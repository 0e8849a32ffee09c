package source

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/selectbox"
	"github.com/pelletier/go-toml/v2"
)

// fileSet is the on-disk layout:
//
//	single = "b"
//	multiple = ["a", "c"]
//
//	[[options]]
//	label = "Alpha"
//	value = "a"
type fileSet struct {
	Single   any          `toml:"single"`
	Multiple []any        `toml:"multiple"`
	Options  []fileOption `toml:"options"`
}

type fileOption struct {
	Label string `toml:"label"`
	Value any    `toml:"value"`
}

// LoadFile reads a TOML option file. An option without a value uses its label
// as the value; values must be unique.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open options file: %w", err)
	}
	defer f.Close()

	var raw fileSet
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&raw); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Set{}, fmt.Errorf("options file %s: %s", path, strings.TrimSpace(strict.String()))
		}
		return Set{}, fmt.Errorf("options file %s: %w", path, err)
	}
	set, err := raw.build()
	if err != nil {
		return Set{}, fmt.Errorf("options file %s: %w", path, err)
	}
	set.Name = NameFile
	return set, nil
}

func (raw fileSet) build() (Set, error) {
	if len(raw.Options) == 0 {
		return Set{}, errors.New("no options defined")
	}
	options := make([]*selectbox.Option, 0, len(raw.Options))
	seen := make(map[string]int, len(raw.Options))
	for i, o := range raw.Options {
		label := strings.TrimSpace(o.Label)
		if label == "" {
			return Set{}, fmt.Errorf("option %d: empty label", i+1)
		}
		value := o.Value
		if value == nil {
			value = label
		}
		opt := &selectbox.Option{Label: label, Value: value}
		if prev, dup := seen[opt.Key()]; dup {
			return Set{}, fmt.Errorf("option %d: value %q already used by option %d", i+1, opt.Key(), prev)
		}
		seen[opt.Key()] = i + 1
		options = append(options, opt)
	}

	set := Set{Options: options, Multiple: []*selectbox.Option{}}
	if raw.Single != nil {
		key := fmt.Sprint(raw.Single)
		set.Single = byKey(options, key)
		if set.Single == nil {
			return Set{}, fmt.Errorf("single: unknown value %q", key)
		}
	}
	for _, v := range raw.Multiple {
		key := fmt.Sprint(v)
		opt := byKey(options, key)
		if opt == nil {
			return Set{}, fmt.Errorf("multiple: unknown value %q", key)
		}
		if indexOfOption(set.Multiple, opt) >= 0 {
			continue
		}
		set.Multiple = append(set.Multiple, opt)
	}
	return set, nil
}

func indexOfOption(opts []*selectbox.Option, target *selectbox.Option) int {
	for i, o := range opts {
		if o == target {
			return i
		}
	}
	return -1
}
