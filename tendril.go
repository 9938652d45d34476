package tendril

import (
	"log/slog"

	"github.com/aretw0/tendril/pkg/resolve"
	"github.com/aretw0/tendril/pkg/term"
)

// Version is the library version, reported by the CLI.
const Version = "0.1.0"

// RMV is the removal sentinel, re-exported for one-import use. Binding a
// name to RMV prunes every entry that resolves to it.
var RMV = term.RMV

// Ref creates a symbolic reference.
func Ref(name string) term.Ref { return term.Ref(name) }

// config collects Transform options before they are handed to the
// resolver.
type config struct {
	overrides map[string]term.Term
	resolver  []resolve.Option
}

// Option defines a functional option for configuring a transformation.
type Option func(*config)

// WithOverrides merges caller bindings as the innermost scope, taking
// precedence over every default already in the environment.
func WithOverrides(overrides map[string]term.Term) Option {
	return func(c *config) {
		if c.overrides == nil {
			c.overrides = make(map[string]term.Term)
		}
		for name, t := range overrides {
			c.overrides[name] = t
		}
	}
}

// WithLogger sets a structured logger for resolution tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.resolver = append(c.resolver, resolve.WithLogger(logger))
	}
}

// WithStrict fails the transformation if any reference is left unresolved
// in the output, instead of passing it through.
func WithStrict() Option {
	return func(c *config) {
		c.resolver = append(c.resolver, resolve.WithStrict(true))
	}
}

// WithMaxDepth overrides the recursion depth guard.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.resolver = append(c.resolver, resolve.WithMaxDepth(depth))
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks resolve.Hooks) Option {
	return func(c *config) {
		c.resolver = append(c.resolver, resolve.WithHooks(hooks))
	}
}

// Transform resolves a template against an environment and returns the
// fully resolved tree. It is the high-level entry point wrapping
// pkg/resolve; use that package directly for a reusable Resolver.
func Transform(t term.Term, env *term.Env, opts ...Option) (term.Term, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if env == nil {
		env = term.NewEnv(nil)
	}
	if c.overrides != nil {
		env = env.With(c.overrides)
	}
	return resolve.New(c.resolver...).Resolve(t, env)
}
