package source

import "github.com/atomicstack/tmux-popup-select/internal/selectbox"

// Builtin returns five numbered options with the first one selected in both
// modes.
func Builtin() Set {
	options := []*selectbox.Option{
		{Label: "First", Value: 1},
		{Label: "Second", Value: 2},
		{Label: "Third", Value: 3},
		{Label: "Fourth", Value: 4},
		{Label: "Fifth", Value: 5},
	}
	return Set{
		Name:     NameBuiltin,
		Options:  options,
		Single:   options[0],
		Multiple: []*selectbox.Option{options[0]},
	}
}
