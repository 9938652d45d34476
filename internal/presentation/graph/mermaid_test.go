package graph

import (
	"strings"
	"testing"

	"github.com/aretw0/tendril/pkg/introspect"
	"github.com/aretw0/tendril/pkg/term"
)

func TestGenerateMermaid_Shapes(t *testing.T) {
	area := term.NewFunc([]string{"WIDTH"}, func(term.Args) (term.Term, error) {
		return term.Val(0), nil
	}, "")
	env := term.NewEnv(map[string]term.Term{
		"WIDTH": term.Val(400),
		"H":     term.Ref("WIDTH"),
		"AREA":  area,
		"PLOT":  term.MapOf("pad", term.Ref("PAD")),
	})

	out := GenerateMermaid(introspect.Inspect(env))

	if !strings.HasPrefix(out, "graph TD\n") {
		t.Fatalf("output should start with graph TD, got %q", out[:20])
	}
	for _, want := range []string{
		`WIDTH["WIDTH"]`,
		`AREA[["AREA"]]`,
		`H[/"H"/]`,
		`PAD(("PAD"))`,
		"AREA --> WIDTH",
		"H --> WIDTH",
		"PLOT --> PAD",
		"classDef unbound",
		"class PAD unbound;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestGenerateMermaid_CycleEdgesDashed(t *testing.T) {
	env := term.NewEnv(map[string]term.Term{
		"A": term.Ref("B"),
		"B": term.Ref("A"),
		"C": term.Ref("A"),
	})
	out := GenerateMermaid(introspect.Inspect(env))

	if !strings.Contains(out, "A -.-> B") || !strings.Contains(out, "B -.-> A") {
		t.Errorf("cycle edges should be dashed:\n%s", out)
	}
	if !strings.Contains(out, "C --> A") {
		t.Errorf("non-cycle edge should stay solid:\n%s", out)
	}
}

func TestSanitizeMermaidID(t *testing.T) {
	cases := map[string]string{
		"plain":        "plain",
		"dot.ted":      "dot_ted",
		"dash-ed":      "dash_ed",
		"slash/nested": "slash_nested",
	}
	for in, want := range cases {
		if got := sanitizeMermaidID(in); got != want {
			t.Errorf("sanitizeMermaidID(%q) = %q, want %q", in, got, want)
		}
	}
}
