package term

import (
	"errors"
	"fmt"
)

// ErrNotSerializable is returned when a tree containing a function value is
// handed to an encoder. Functions live only in environments; they have no
// data representation.
var ErrNotSerializable = errors.New("term: function values are not serializable")

// Term is a template value. It is a closed union: the only implementations
// are Scalar, Seq, *Map, Ref, *Func and the RMV sentinel, so consumers can
// switch over it exhaustively.
type Term interface {
	isTerm()
}

// Scalar is a leaf value: numbers, strings, booleans, nil, or opaque blobs
// such as whole datasets. The resolver never recurses into a Scalar, even
// when the wrapped value is structurally a collection.
type Scalar struct {
	Value any
}

func (Scalar) isTerm() {}

// Val wraps a plain Go value as a Scalar leaf.
func Val(v any) Scalar { return Scalar{Value: v} }

// Seq is an ordered list of terms.
type Seq []Term

func (Seq) isTerm() {}

// Ref is a symbolic reference, resolved against the environment. An unbound
// Ref resolves to itself.
type Ref string

func (Ref) isTerm() {}

func (r Ref) String() string { return "@" + string(r) }

// removal is the type of the RMV sentinel.
type removal struct{}

func (removal) isTerm() {}

func (removal) String() string { return "RMV" }

// RMV marks an entry for removal. Any sequence element or map entry that
// resolves to RMV is dropped from the output, and a collection emptied this
// way is dropped from its own parent in turn.
var RMV Term = removal{}

// IsRMV reports whether t is the removal sentinel.
func IsRMV(t Term) bool { return t == RMV }

// Args carries a function's resolved dependency values, keyed by the
// declared dependency name.
type Args map[string]Term

// Func is a dependency-declaring function value. Deps lists the environment
// keys the computation needs; the resolver fully resolves each of them
// before Call runs, so Call never sees raw bindings. Doc is optional
// human-readable markdown surfaced by introspection tooling.
type Func struct {
	Deps []string
	Doc  string
	Call func(args Args) (Term, error)
}

func (*Func) isTerm() {}

// NewFunc builds a Func from its declared dependencies and computation.
func NewFunc(deps []string, call func(args Args) (Term, error), doc string) *Func {
	return &Func{
		Deps: deps,
		Doc:  doc,
		Call: call,
	}
}

func (f *Func) String() string {
	return fmt.Sprintf("fn(%v)", f.Deps)
}
