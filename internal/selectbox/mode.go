package selectbox

// Mode fixes the shape of a Model's selection for its whole lifetime. The only
// implementations are Single and Multiple, so the value type a Model accepts
// is checked at compile time.
type Mode[V any] interface {
	// Multiple reports whether the selection is an ordered set of options.
	Multiple() bool

	next(current V, option *Option) (V, bool)
	contains(current V, option *Option) bool
	cleared() V
	closesOnSelect() bool
	badges(current V) []*Option
	labels(current V) []string
}

type singleMode struct{}

// Single selects at most one option. The value is nil when nothing is chosen.
func Single() Mode[*Option] {
	return singleMode{}
}

func (singleMode) Multiple() bool { return false }

func (singleMode) next(current, option *Option) (*Option, bool) {
	if option == current {
		return current, false
	}
	return option, true
}

func (singleMode) contains(current, option *Option) bool {
	return option == current
}

func (singleMode) cleared() *Option { return nil }

func (singleMode) closesOnSelect() bool { return true }

func (singleMode) badges(*Option) []*Option { return nil }

func (singleMode) labels(current *Option) []string {
	if current == nil {
		return nil
	}
	return []string{current.Label}
}

type multipleMode struct{}

// Multiple selects any number of options, kept in the order they were picked.
// Toggling keeps the panel open.
func Multiple() Mode[[]*Option] {
	return multipleMode{}
}

func (multipleMode) Multiple() bool { return true }

// next removes option when present, preserving the order of the rest, and
// appends it otherwise. The current slice is never modified.
func (multipleMode) next(current []*Option, option *Option) ([]*Option, bool) {
	if indexOf(current, option) >= 0 {
		out := make([]*Option, 0, len(current)-1)
		for _, o := range current {
			if o != option {
				out = append(out, o)
			}
		}
		return out, true
	}
	out := make([]*Option, 0, len(current)+1)
	out = append(out, current...)
	return append(out, option), true
}

func (multipleMode) contains(current []*Option, option *Option) bool {
	return indexOf(current, option) >= 0
}

func (multipleMode) cleared() []*Option { return []*Option{} }

func (multipleMode) closesOnSelect() bool { return false }

func (multipleMode) badges(current []*Option) []*Option { return current }

func (multipleMode) labels(current []*Option) []string { return Labels(current) }
