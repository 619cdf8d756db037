package value

import "strings"

// List is an ordered, heterogeneous sequence. Lists are built eagerly and
// may contain Error elements in place — some/every/filter inspect elements
// individually rather than short-circuiting at construction (spec.md §4.1,
// "List literal").
type List struct {
	items []Value
}

// NewList copies elems into a new List.
func NewList(elems ...Value) *List {
	return &List{items: append([]Value(nil), elems...)}
}

func (l *List) Kind() Kind   { return KindList }
func (l *List) Len() int     { return len(l.items) }
func (l *List) Items() []Value {
	return append([]Value(nil), l.items...)
}

func (l *List) Get(i int) (Value, bool) {
	if i < 0 || i >= len(l.items) {
		return nil, false
	}
	return l.items[i], true
}

func (l *List) String() string {
	parts := make([]string, len(l.items))
	for i, it := range l.items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Equals(v Value) bool {
	other, ok := v.(*List)
	if !ok || len(l.items) != len(other.items) {
		return false
	}
	for i, it := range l.items {
		if IsError(it) || IsError(other.items[i]) {
			return false
		}
		if !it.Equals(other.items[i]) {
			return false
		}
	}
	return true
}
