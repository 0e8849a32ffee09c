package selectbox

import "fmt"

// Option is a label/value pair shown in the dropdown. Options are compared by
// pointer, so the selection must hold the same *Option values as the list.
type Option struct {
	Label string
	Value any
}

// Key renders Value as the list key. Callers keep it unique per list.
func (o *Option) Key() string {
	if o == nil {
		return ""
	}
	return fmt.Sprint(o.Value)
}

// Labels returns the labels of opts in order.
func Labels(opts []*Option) []string {
	if len(opts) == 0 {
		return nil
	}
	labels := make([]string, 0, len(opts))
	for _, o := range opts {
		if o == nil {
			continue
		}
		labels = append(labels, o.Label)
	}
	return labels
}

func indexOf(opts []*Option, target *Option) int {
	for i, o := range opts {
		if o == target {
			return i
		}
	}
	return -1
}
