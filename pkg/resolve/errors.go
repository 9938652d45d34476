package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/tendril/pkg/term"
)

// ErrUnresolved is wrapped by strict-mode failures when a reference is
// still present in the resolved output.
var ErrUnresolved = errors.New("unresolved reference")

// Error reports a failed resolution: the key being resolved, a snapshot of
// the environment at the point of failure, and the underlying cause.
// Function runtime failures and malformed dependency declarations both
// surface through this type; unbound references deliberately do not (they
// resolve to themselves).
type Error struct {
	Key string
	Env *term.Env
	Err error
}

func (e *Error) Error() string {
	if e.Env != nil {
		return fmt.Sprintf("resolve %q: %v (in scope: %s)", e.Key, e.Err, strings.Join(e.Env.Keys(), ", "))
	}
	return fmt.Sprintf("resolve %q: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// CyclicError is returned when the recursion depth guard trips. The engine
// performs no true cycle detection; a multi-hop cycle (A depends on B
// depends on A) manifests as unbounded recursion, which the guard converts
// into this error instead of exhausting the stack.
type CyclicError struct {
	Key   string
	Depth int
}

func (e *CyclicError) Error() string {
	return fmt.Sprintf("resolve %q: probable dependency cycle (depth limit %d exceeded)", e.Key, e.Depth)
}
