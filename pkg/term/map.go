package term

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultsKey is the reserved mapping key holding a nested defaults
// sub-environment. While the resolver works inside that mapping, lookups
// consult these bindings first and fall back to the enclosing environment.
// The key itself never appears in resolved output.
const DefaultsKey = "@defaults"

// Map is an ordered key to term mapping. Entry order is preserved through
// resolution and encoding, which matters for rendering backends where
// field order is visible.
type Map struct {
	entries *orderedmap.OrderedMap[string, Term]
}

func (*Map) isTerm() {}

// NewMap creates an empty ordered mapping.
func NewMap() *Map {
	return &Map{entries: orderedmap.New[string, Term]()}
}

// Set stores a key, appending it to the order if new. Returns the map for
// chaining.
func (m *Map) Set(key string, t Term) *Map {
	m.entries.Set(key, t)
	return m
}

// Get returns the term bound to key.
func (m *Map) Get(key string) (Term, bool) {
	return m.entries.Get(key)
}

// Delete removes key, reporting whether it was present.
func (m *Map) Delete(key string) bool {
	_, present := m.entries.Delete(key)
	return present
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.entries.Len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, t Term) bool) {
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Defaults returns the nested defaults sub-environment, if the reserved key
// is present.
func (m *Map) Defaults() (Term, bool) {
	return m.entries.Get(DefaultsKey)
}

// Clone returns a shallow copy: same term values, independent entry table.
func (m *Map) Clone() *Map {
	out := NewMap()
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	return out
}

// MapOf builds a mapping from alternating key, term pairs. It panics on an
// odd number of arguments; intended for literals in tests and examples.
func MapOf(pairs ...any) *Map {
	if len(pairs)%2 != 0 {
		panic("term: MapOf requires key/value pairs")
	}
	m := NewMap()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic("term: MapOf keys must be strings")
		}
		m.Set(key, AsTerm(pairs[i+1]))
	}
	return m
}

// AsTerm coerces a plain Go value into a Term. Terms pass through, []any
// becomes a Seq, everything else becomes a Scalar leaf.
func AsTerm(v any) Term {
	switch v := v.(type) {
	case Term:
		return v
	case []any:
		seq := make(Seq, len(v))
		for i, item := range v {
			seq[i] = AsTerm(item)
		}
		return seq
	default:
		return Scalar{Value: v}
	}
}
