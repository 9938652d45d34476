/*
Package resolve implements the substitution engine: a small-step
term-rewriting evaluator that replaces symbolic references inside a
template with values from an environment.

At each node the rules apply in precedence order:

 1. Lookup: a bound reference is replaced by its binding, recursively, so
    chains of references collapse.
 2. Fixpoint: an unbound or self-referential reference resolves to itself.
 3. Function application: a dependency function has each declared
    dependency resolved first, runs on the resolved values, and its return
    value is resolved in turn.
 4. Collection recursion: sequences and mappings resolve element-wise
    against the same environment.
 5. Nested defaults: a mapping's defaults sub-environment becomes the
    innermost scope for that subtree.
 6. Removal: entries resolving to the RMV sentinel are dropped, and
    collections emptied this way are dropped from their parents.

Scalars, including opaque blobs such as datasets, pass through untouched.

Every (reference, environment) pair is computed at most once per Resolve
call via a memo cache scoped to that call, so side effects inside
dependency functions are bounded. Resolution is synchronous and
single-threaded; there is no cycle detection beyond a recursion depth
guard that converts runaway chains into a CyclicError.
*/
package resolve
