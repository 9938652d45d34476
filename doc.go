/*
Package tendril is a substitution and dependency evaluation engine for
declarative, data-driven templates.

It powers plotting-grammar style libraries where chart specs are assembled
as plain nested data containing symbolic placeholders, then resolved
against an environment of defaults, caller overrides, and dependency-aware
functions. The engine itself knows nothing about charts: it is a
term-rewriting interpreter over ordered maps, sequences, and scalar leaves.

# Concept

A template is a term tree. References ("@name") stand for "look this up in
the environment"; environments nest lexically, so inner defaults shadow
outer ones and caller overrides shadow everything. A binding may be a
dependency function that declares which names it needs: the engine resolves
those first, runs the function on the resolved values, and resolves its
return value in turn. Every (reference, environment) pair is computed at
most once per transformation via a per-call memo cache.

Unbound references resolve to themselves rather than erroring, which keeps
partial templates composable. Binding a name to the RMV sentinel prunes the
entries that resolve to it, and collections emptied this way are pruned
from their parents.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/tendril"
		"github.com/aretw0/tendril/pkg/dsl"
	)

	func main() {
		tmpl := dsl.Map().
			Set("mark", "circle").
			Set("width", dsl.Ref("WIDTH")).
			Set("title", dsl.Ref("TITLE")).
			Build()

		env := dsl.Env().
			Bind("WIDTH", 400).
			Bind("TITLE", tendril.RMV). // drop the title entry
			Build()

		out, err := tendril.Transform(tmpl, env)
		if err != nil {
			panic(err)
		}
		fmt.Println(out) // {mark: circle, width: 400}
	}

# Packages

  - pkg/term: the value model (terms, environments, RMV).
  - pkg/resolve: the resolver, memo cache, and error types.
  - pkg/dsl: fluent builders for templates and environments.
  - pkg/codec: YAML/struct conversion for templates and resolved output.
  - pkg/schema: type validation of resolved output.
  - pkg/introspect: static dependency graphs from declared dependencies.
  - pkg/observability: Prometheus adapters for resolver hooks.
*/
package tendril
