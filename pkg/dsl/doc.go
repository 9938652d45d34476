/*
Package dsl provides a Go DSL for programmatically constructing Tendril
templates and environments.

It lets developers assemble term trees with a type-safe, fluent builder
pattern instead of hand-building term values or loading YAML files. This
is particularly useful for layer builders, unit testing, and leveraging
IDE autocompletion.

Example usage:

	package main

	import (
		"github.com/aretw0/tendril/pkg/dsl"
		"github.com/aretw0/tendril/pkg/term"
	)

	func main() {
		tmpl := dsl.Map().
			Set("mark", "circle").
			Set("width", dsl.Ref("WIDTH")).
			Set("encoding", dsl.Map().
				Set("x", dsl.Ref("XFIELD")).
				Set("y", dsl.Ref("YFIELD"))).
			Build()

		env := dsl.Env().
			Bind("WIDTH", 400).
			Bind("XFIELD", "date").
			Bind("YFIELD", term.RMV). // prune the y channel
			Build()

		// ... pass tmpl and env to resolve.New().Resolve(...)
		_ = tmpl
		_ = env
	}
*/
package dsl
