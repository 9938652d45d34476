package term

import (
	"encoding/json"
	"testing"
)

func TestMap_PreservesInsertionOrder(t *testing.T) {
	m := NewMap().
		Set("zebra", Val(1)).
		Set("alpha", Val(2)).
		Set("mango", Val(3))

	want := []string{"zebra", "alpha", "mango"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMap_SetOverwrites(t *testing.T) {
	m := NewMap().Set("a", Val(1)).Set("a", Val(2))
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	v, _ := m.Get("a")
	if !Equal(v, Val(2)) {
		t.Errorf("Get(a) = %v, want 2", v)
	}
}

func TestEqual(t *testing.T) {
	fn := NewFunc([]string{"A"}, func(args Args) (Term, error) { return Val(1), nil }, "")
	fn2 := NewFunc([]string{"A"}, func(args Args) (Term, error) { return Val(1), nil }, "")

	cases := []struct {
		name string
		a, b Term
		want bool
	}{
		{"scalars equal", Val(10), Val(10), true},
		{"scalars differ", Val(10), Val(11), false},
		{"scalar vs ref", Val("A"), Ref("A"), false},
		{"refs equal", Ref("A"), Ref("A"), true},
		{"rmv equal", RMV, RMV, true},
		{"rmv vs scalar", RMV, Val(nil), false},
		{"seq equal", Seq{Val(1), Val(2)}, Seq{Val(1), Val(2)}, true},
		{"seq order matters", Seq{Val(1), Val(2)}, Seq{Val(2), Val(1)}, false},
		{"map equal", MapOf("x", 1, "y", 2), MapOf("x", 1, "y", 2), true},
		{"map key order matters", MapOf("x", 1, "y", 2), MapOf("y", 2, "x", 1), false},
		{"map value differs", MapOf("x", 1), MapOf("x", 2), false},
		{"func identity", fn, fn, true},
		{"func distinct", fn, fn2, false},
		{"nil equal", nil, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAsTerm(t *testing.T) {
	if _, ok := AsTerm("hello").(Scalar); !ok {
		t.Error("string should coerce to Scalar")
	}
	if _, ok := AsTerm(Ref("A")).(Ref); !ok {
		t.Error("Term should pass through")
	}
	q, ok := AsTerm([]any{1, Ref("A")}).(Seq)
	if !ok || len(q) != 2 {
		t.Fatalf("[]any should coerce to Seq, got %T", AsTerm([]any{1}))
	}
	if _, ok := q[1].(Ref); !ok {
		t.Error("Seq elements should coerce recursively")
	}
}

func TestToGo(t *testing.T) {
	tree := MapOf(
		"title", "hi",
		"tags", Seq{Val("a"), Val("b")},
		"leftover", Ref("X"),
	)
	plain, err := ToGo(tree)
	if err != nil {
		t.Fatalf("ToGo() error = %v", err)
	}
	m, ok := plain.(map[string]any)
	if !ok {
		t.Fatalf("ToGo() = %T, want map", plain)
	}
	if m["title"] != "hi" {
		t.Errorf("title = %v", m["title"])
	}
	if m["leftover"] != "@X" {
		t.Errorf("leftover ref = %v, want @X", m["leftover"])
	}
	tags, ok := m["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("tags = %v", m["tags"])
	}
}

func TestToGo_RejectsFuncs(t *testing.T) {
	fn := NewFunc(nil, func(args Args) (Term, error) { return Val(1), nil }, "")
	if _, err := ToGo(MapOf("f", fn)); err == nil {
		t.Error("ToGo() should reject function values")
	}
}

func TestJSON_OrderedOutput(t *testing.T) {
	tree := MapOf("b", 1, "a", MapOf("z", true, "y", Seq{Val(1), Ref("K")}))
	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"b":1,"a":{"z":true,"y":[1,"@K"]}}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestJSON_RejectsFuncsAndRMV(t *testing.T) {
	fn := NewFunc(nil, func(args Args) (Term, error) { return Val(1), nil }, "")
	if _, err := json.Marshal(MapOf("f", fn)); err == nil {
		t.Error("Marshal should reject function values")
	}
	if _, err := json.Marshal(MapOf("r", RMV)); err == nil {
		t.Error("Marshal should reject the removal sentinel")
	}
}
