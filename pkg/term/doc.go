/*
Package term defines the template value model and environments for the
Tendril substitution engine.

A template is a Term tree: Scalar leaves, ordered Seq lists, ordered Map
entries, symbolic Ref placeholders, and dependency-declaring Func values.
Templates carry no behavior of their own; pkg/resolve walks them against an
Env to produce a fully resolved tree.

# Key Entities

  - Term: closed union of all template value kinds.
  - Ref: placeholder resolved via the environment; unbound refs resolve to
    themselves.
  - Func: a computation plus the explicit list of environment keys it needs,
    inspectable without being invoked.
  - RMV: removal sentinel; entries resolving to it are pruned from output.
  - Env: immutable, lexically scoped binding frames with content
    fingerprints for memoization.
*/
package term
