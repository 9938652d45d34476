/*
Package introspect builds the static dependency graph of an environment.

Dependency functions declare the names they need up front, so the graph can
be drawn without evaluating anything: function bindings contribute their
declared lists, ref bindings their alias targets, and plain values whatever
references they embed. Unbound names are included and flagged, since at
runtime they silently resolve to themselves.

Cycles reports multi-hop dependency cycles, which the resolver does not
detect at runtime beyond its recursion depth guard.
*/
package introspect
