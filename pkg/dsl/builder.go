package dsl

import (
	"github.com/aretw0/tendril/pkg/term"
)

// MapBuilder accumulates an ordered mapping. Values passed to Set are
// coerced: terms and nested builders pass through, plain Go values become
// scalar leaves.
type MapBuilder struct {
	m *term.Map
}

// Map starts a new mapping builder.
func Map() *MapBuilder {
	return &MapBuilder{m: term.NewMap()}
}

// Set adds an entry. Returns the builder for chaining.
func (b *MapBuilder) Set(key string, v any) *MapBuilder {
	b.m.Set(key, coerce(v))
	return b
}

// Defaults attaches a nested defaults sub-environment under the reserved
// key. Bindings in it shadow the enclosing environment for this subtree.
func (b *MapBuilder) Defaults(d *MapBuilder) *MapBuilder {
	b.m.Set(term.DefaultsKey, d.Build())
	return b
}

// Build returns the underlying mapping.
func (b *MapBuilder) Build() *term.Map {
	return b.m
}

// Seq builds a sequence from the given items, coercing each.
func Seq(items ...any) term.Seq {
	out := make(term.Seq, len(items))
	for i, item := range items {
		out[i] = coerce(item)
	}
	return out
}

// Ref creates a symbolic reference.
func Ref(name string) term.Ref {
	return term.Ref(name)
}

// Val wraps a plain value as a scalar leaf. Useful for values that would
// otherwise be coerced, such as []any.
func Val(v any) term.Scalar {
	return term.Val(v)
}

// Fn creates a dependency function from its computation and the names of
// the environment keys it needs. Use term.NewFunc directly to attach
// documentation.
func Fn(call func(args term.Args) (term.Term, error), deps ...string) *term.Func {
	return term.NewFunc(deps, call, "")
}

// EnvBuilder accumulates environment bindings.
type EnvBuilder struct {
	bindings map[string]term.Term
}

// Env starts a new environment builder.
func Env() *EnvBuilder {
	return &EnvBuilder{bindings: make(map[string]term.Term)}
}

// Bind adds a binding, coercing plain Go values to scalar leaves.
func (b *EnvBuilder) Bind(name string, v any) *EnvBuilder {
	b.bindings[name] = coerce(v)
	return b
}

// BindFn binds a dependency function in one step.
func (b *EnvBuilder) BindFn(name string, call func(args term.Args) (term.Term, error), deps ...string) *EnvBuilder {
	b.bindings[name] = term.NewFunc(deps, call, "")
	return b
}

// Build returns the immutable environment.
func (b *EnvBuilder) Build() *term.Env {
	return term.NewEnv(b.bindings)
}

func coerce(v any) term.Term {
	if mb, ok := v.(*MapBuilder); ok {
		return mb.Build()
	}
	return term.AsTerm(v)
}
