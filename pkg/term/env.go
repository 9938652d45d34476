package term

import (
	"sort"
)

// Env is an immutable frame of name to term bindings with a parent pointer.
// Lookup walks from the innermost frame outward, so child frames shadow
// their parents the way lexical scopes do. Frames are never mutated after
// construction; Child and With build new innermost frames.
type Env struct {
	bindings map[string]Term
	parent   *Env
	fp       uint64
}

// NewEnv creates a root environment from the given bindings. The map is
// copied; the caller keeps ownership of its argument.
func NewEnv(bindings map[string]Term) *Env {
	return newEnv(bindings, nil)
}

// Child creates a nested frame whose bindings shadow this environment.
// Used by the resolver when entering a mapping that carries a defaults
// sub-environment.
func (e *Env) Child(bindings map[string]Term) *Env {
	return newEnv(bindings, e)
}

// With merges caller overrides as a new innermost frame. This is the user
// override channel: it takes precedence over every builder default already
// in scope.
func (e *Env) With(overrides map[string]Term) *Env {
	if len(overrides) == 0 {
		return e
	}
	return newEnv(overrides, e)
}

func newEnv(bindings map[string]Term, parent *Env) *Env {
	copied := make(map[string]Term, len(bindings))
	for name, t := range bindings {
		copied[name] = t
	}
	e := &Env{bindings: copied, parent: parent}
	e.fp = e.fingerprint()
	return e
}

// Lookup searches for name from the innermost frame outward.
func (e *Env) Lookup(name string) (Term, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if t, ok := frame.bindings[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// Fingerprint returns a content digest of the environment, including its
// parent chain. Two environments with the same visible bindings share a
// fingerprint even when built separately; the memo cache relies on this to
// distinguish environments by content rather than by pointer.
func (e *Env) Fingerprint() uint64 {
	return e.fp
}

// Keys returns every visible binding name, innermost shadowing applied,
// sorted for stable output.
func (e *Env) Keys() []string {
	seen := make(map[string]struct{})
	for frame := e; frame != nil; frame = frame.parent {
		for name := range frame.bindings {
			seen[name] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for name := range seen {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot flattens the visible bindings into a plain map, applying
// shadowing. Used for error reports and introspection; mutating the result
// does not affect the environment.
func (e *Env) Snapshot() map[string]Term {
	out := make(map[string]Term)
	for _, name := range e.Keys() {
		t, _ := e.Lookup(name)
		out[name] = t
	}
	return out
}
