package resolve

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/pkg/term"
)

// DefaultMaxDepth bounds resolution recursion. Dependency chains in real
// templates are a handful of hops deep; anything approaching this limit is
// a cycle.
const DefaultMaxDepth = 1000

// Resolver applies the substitution rules to a template against an
// environment. A Resolver is stateless across calls and may be reused; the
// memo cache lives inside each Resolve invocation.
type Resolver struct {
	maxDepth int
	strict   bool
	logger   *slog.Logger
	hooks    Hooks
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth overrides the recursion depth guard.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		r.maxDepth = depth
	}
}

// WithStrict makes resolution fail if any reference is left unresolved in
// the output. The default is lenient: unbound references pass through as
// themselves, which keeps partial templates composable but lets typos
// travel silently into rendered output.
func WithStrict(strict bool) Option {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// WithLogger sets a structured logger for resolution tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks Hooks) Option {
	return func(r *Resolver) {
		r.hooks = hooks
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		maxDepth: DefaultMaxDepth,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve walks the template against env and returns the fully resolved
// tree. A fresh memo cache is created for the call and discarded when it
// returns, so a dependency function's side effects happen at most once per
// distinct (reference, environment) pair within the call.
//
// A top-level result that would be removed (the sentinel itself, or a
// collection emptied by removal) comes back as an empty mapping; there is
// no parent to drop it from.
func (r *Resolver) Resolve(t term.Term, env *term.Env) (term.Term, error) {
	c := newCache()
	out, err := r.resolve(t, env, c, 0)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("resolution complete", "cache_hits", c.hits, "cache_misses", c.misses)
	if term.IsRMV(out) {
		out = term.NewMap()
	}
	if r.strict {
		if name, found := findRef(out); found {
			return nil, &Error{Key: name, Env: env, Err: ErrUnresolved}
		}
	}
	return out, nil
}

// resolve applies the substitution rules in precedence order at one node.
func (r *Resolver) resolve(t term.Term, env *term.Env, c *cache, depth int) (term.Term, error) {
	if depth > r.maxDepth {
		return nil, &CyclicError{Key: describe(t), Depth: r.maxDepth}
	}

	switch t := t.(type) {
	case nil:
		return nil, nil

	case term.Ref:
		return r.resolveRef(t, env, c, depth)

	case term.Scalar:
		// Leaves pass through, opaque blobs included.
		return t, nil

	case term.Seq:
		return r.resolveSeq(t, env, c, depth)

	case *term.Map:
		return r.resolveMap(t, env, c, depth)

	case *term.Func:
		// A function embedded directly in the template, not reached
		// through a reference.
		return r.invoke("", t, env, c, depth)
	}

	if term.IsRMV(t) {
		return t, nil
	}
	return nil, fmt.Errorf("resolve: unknown term type %T", t)
}

// resolveRef implements lookup and fixpoint (rules 1 and 2) with
// memoization. Chains of references collapse through recursion; an unbound
// or self-referential name is its own fixpoint.
func (r *Resolver) resolveRef(ref term.Ref, env *term.Env, c *cache, depth int) (term.Term, error) {
	name := string(ref)
	if cached, ok := c.get(name, env); ok {
		r.hooks.cacheHit(name)
		return cached, nil
	}
	r.hooks.cacheMiss(name)

	bound, ok := env.Lookup(name)
	if !ok {
		c.put(name, env, ref)
		return ref, nil
	}
	if next, isRef := bound.(term.Ref); isRef && next == ref {
		c.put(name, env, ref)
		return ref, nil
	}

	var out term.Term
	var err error
	if fn, isFunc := bound.(*term.Func); isFunc {
		out, err = r.invoke(name, fn, env, c, depth)
	} else {
		out, err = r.resolve(bound, env, c, depth+1)
	}
	if err != nil {
		return nil, err
	}
	c.put(name, env, out)
	r.logger.Debug("ref resolved", "ref", name)
	return out, nil
}

// invoke implements function application (rule 3): every declared
// dependency is resolved to its own fixpoint first, then the function runs
// on the resolved values, and its return value is resolved in turn.
func (r *Resolver) invoke(name string, fn *term.Func, env *term.Env, c *cache, depth int) (term.Term, error) {
	args := make(term.Args, len(fn.Deps))
	for _, dep := range fn.Deps {
		v, err := r.resolveRef(term.Ref(dep), env, c, depth+1)
		if err != nil {
			return nil, &Error{Key: dep, Env: env, Err: err}
		}
		args[dep] = v
	}
	r.hooks.funcCall(name)
	r.logger.Debug("invoking dependency function", "ref", name, "deps", fn.Deps)
	ret, err := fn.Call(args)
	if err != nil {
		return nil, &Error{Key: name, Env: env, Err: err}
	}
	return r.resolve(ret, env, c, depth+1)
}

// resolveSeq recurses into a sequence (rule 4) and applies removal
// (rule 6): elements resolving to RMV are dropped, and a sequence left (or
// found) empty is removed from its parent by resolving to RMV itself.
func (r *Resolver) resolveSeq(q term.Seq, env *term.Env, c *cache, depth int) (term.Term, error) {
	out := make(term.Seq, 0, len(q))
	for _, item := range q {
		resolved, err := r.resolve(item, env, c, depth+1)
		if err != nil {
			return nil, err
		}
		if term.IsRMV(resolved) {
			continue
		}
		out = append(out, resolved)
	}
	if len(out) == 0 {
		return term.RMV, nil
	}
	return out, nil
}

// resolveMap recurses into a mapping (rule 4). A defaults sub-environment
// under the reserved key becomes the innermost scope for the subtree
// (rule 5) and is omitted from output. Removal bubbles exactly as for
// sequences.
func (r *Resolver) resolveMap(m *term.Map, env *term.Env, c *cache, depth int) (term.Term, error) {
	scope := env
	if defaults, ok := m.Defaults(); ok {
		local, ok := defaults.(*term.Map)
		if !ok {
			return nil, &Error{Key: term.DefaultsKey, Env: env,
				Err: fmt.Errorf("defaults must be a mapping, got %T", defaults)}
		}
		bindings := make(map[string]term.Term, local.Len())
		local.Range(func(key string, v term.Term) bool {
			bindings[key] = v
			return true
		})
		scope = env.Child(bindings)
	}

	out := term.NewMap()
	var resErr error
	m.Range(func(key string, v term.Term) bool {
		if key == term.DefaultsKey {
			return true
		}
		resolved, err := r.resolve(v, scope, c, depth+1)
		if err != nil {
			resErr = err
			return false
		}
		if term.IsRMV(resolved) {
			return true
		}
		out.Set(key, resolved)
		return true
	})
	if resErr != nil {
		return nil, resErr
	}
	if out.Len() == 0 {
		return term.RMV, nil
	}
	return out, nil
}

// findRef locates the first leftover reference in a resolved tree.
func findRef(t term.Term) (string, bool) {
	switch t := t.(type) {
	case term.Ref:
		return string(t), true
	case term.Seq:
		for _, item := range t {
			if name, found := findRef(item); found {
				return name, true
			}
		}
	case *term.Map:
		var name string
		var found bool
		t.Range(func(_ string, v term.Term) bool {
			name, found = findRef(v)
			return !found
		})
		return name, found
	}
	return "", false
}

func describe(t term.Term) string {
	switch t := t.(type) {
	case term.Ref:
		return string(t)
	case *term.Func:
		return t.String()
	default:
		return fmt.Sprintf("%T", t)
	}
}
