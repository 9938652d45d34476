package term

import (
	"testing"
)

func bindings(pairs ...any) map[string]Term {
	out := make(map[string]Term)
	for i := 0; i < len(pairs); i += 2 {
		out[pairs[i].(string)] = AsTerm(pairs[i+1])
	}
	return out
}

func TestEnv_LookupWalksOutward(t *testing.T) {
	root := NewEnv(bindings("A", 1, "B", 2))
	child := root.Child(bindings("B", 20, "C", 30))

	v, ok := child.Lookup("B")
	if !ok || !Equal(v, Val(20)) {
		t.Errorf("child Lookup(B) = %v, want 20 (shadowed)", v)
	}
	v, ok = child.Lookup("A")
	if !ok || !Equal(v, Val(1)) {
		t.Errorf("child Lookup(A) = %v, want 1 (from parent)", v)
	}
	if _, ok := child.Lookup("missing"); ok {
		t.Error("Lookup(missing) should report absence")
	}
	// Parent is unaffected by the child frame.
	v, _ = root.Lookup("B")
	if !Equal(v, Val(2)) {
		t.Errorf("root Lookup(B) = %v, want 2", v)
	}
}

func TestEnv_WithEmptyIsNoop(t *testing.T) {
	env := NewEnv(bindings("A", 1))
	if env.With(nil) != env {
		t.Error("With(nil) should return the same environment")
	}
}

func TestEnv_FingerprintByContent(t *testing.T) {
	a := NewEnv(bindings("A", 1, "B", "x"))
	b := NewEnv(bindings("B", "x", "A", 1))
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical content should fingerprint identically")
	}

	c := NewEnv(bindings("A", 2, "B", "x"))
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different content should fingerprint differently")
	}

	child := a.Child(bindings("C", 3))
	if child.Fingerprint() == a.Fingerprint() {
		t.Error("child frame should change the fingerprint")
	}
}

func TestEnv_FingerprintDistinguishesScalarTypes(t *testing.T) {
	cases := []struct {
		name string
		a, b any
	}{
		{"int vs string", 1, "1"},
		{"bool vs string", true, "true"},
		{"int vs float", 1, 1.0},
		{"string vs nil", "<nil>", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewEnv(map[string]Term{"N": Val(tc.a)})
			b := NewEnv(map[string]Term{"N": Val(tc.b)})
			if a.Fingerprint() == b.Fingerprint() {
				t.Errorf("%v and %v must not share a fingerprint", tc.a, tc.b)
			}
		})
	}
}

func TestEnv_FingerprintNotAliasedByDelimiters(t *testing.T) {
	// One binding whose string value spells out what two separate
	// bindings would contribute must still digest differently.
	a := NewEnv(map[string]Term{"A": Val("1;B=s:2")})
	b := NewEnv(bindings("A", 1, "B", 2))
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("binding boundaries must not be forgeable from string content")
	}

	c := NewEnv(map[string]Term{"A=1": Val("x")})
	d := NewEnv(map[string]Term{"A": Val("1=x")})
	if c.Fingerprint() == d.Fingerprint() {
		t.Error("delimiter characters in names must not shift binding boundaries")
	}
}

func TestEnv_FingerprintDistinguishesTermKinds(t *testing.T) {
	asRef := NewEnv(map[string]Term{"A": Ref("B")})
	asStr := NewEnv(map[string]Term{"A": Val("B")})
	if asRef.Fingerprint() == asStr.Fingerprint() {
		t.Error("a ref and an equal-looking string must not collide")
	}
}

func TestEnv_FingerprintFuncsByIdentity(t *testing.T) {
	call := func(args Args) (Term, error) { return Val(1), nil }
	fn1 := NewFunc([]string{"A"}, call, "")
	fn2 := NewFunc([]string{"A"}, call, "")
	a := NewEnv(map[string]Term{"F": fn1})
	b := NewEnv(map[string]Term{"F": fn2})
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("distinct function values should fingerprint differently")
	}
	c := NewEnv(map[string]Term{"F": fn1})
	if a.Fingerprint() != c.Fingerprint() {
		t.Error("the same function value should fingerprint identically")
	}
}

func TestEnv_SnapshotAppliesShadowing(t *testing.T) {
	env := NewEnv(bindings("A", 1, "B", 2)).Child(bindings("B", 20))
	snap := env.Snapshot()
	if !Equal(snap["B"], Val(20)) {
		t.Errorf("Snapshot B = %v, want 20", snap["B"])
	}
	if len(snap) != 2 {
		t.Errorf("Snapshot size = %d, want 2", len(snap))
	}
}

func TestEnv_ImmutableAfterConstruction(t *testing.T) {
	src := bindings("A", 1)
	env := NewEnv(src)
	src["A"] = Val(999)
	v, _ := env.Lookup("A")
	if !Equal(v, Val(1)) {
		t.Error("mutating the source map must not affect the environment")
	}
}
