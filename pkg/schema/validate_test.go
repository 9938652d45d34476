package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/tendril/pkg/term"
)

func chartSchema() Schema {
	return Schema{
		"title":  String(),
		"width":  Int(),
		"layers": Slice(Any()),
	}
}

func TestValidate_Passes(t *testing.T) {
	m := term.MapOf(
		"title", "sales",
		"width", 400,
		"layers", term.Seq{term.MapOf("mark", "bar")},
	)
	if err := Validate(chartSchema(), m); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidate_EmptySchemaIsNoop(t *testing.T) {
	if err := Validate(nil, term.MapOf("anything", 1)); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	m := term.MapOf("title", 42)
	err := Validate(chartSchema(), m)
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	var agg *AggregateError
	if !errors.As(err, &agg) {
		t.Fatalf("error type = %T, want *AggregateError", err)
	}
	if len(agg.Errors) != 3 {
		t.Errorf("failure count = %d, want 3 (wrong type + two missing)", len(agg.Errors))
	}

	// The aggregate unwraps, so errors.As reaches individual failures.
	var field *ValidationError
	if !errors.As(err, &field) {
		t.Error("errors.As should find a *ValidationError inside the aggregate")
	}
	if got := ValidationErrors(err); len(got) != 3 {
		t.Errorf("ValidationErrors() returned %d errors, want 3", len(got))
	}
}

func TestValidate_ReportsUnresolvedRefs(t *testing.T) {
	m := term.MapOf(
		"title", term.Ref("TITLE"),
		"width", 400,
		"layers", term.Seq{term.Val(1)},
	)
	err := Validate(chartSchema(), m)
	if err == nil {
		t.Fatal("Validate() should fail on a leftover reference")
	}
	if !strings.Contains(err.Error(), "unresolved reference @TITLE") {
		t.Errorf("error = %v, want mention of @TITLE", err)
	}
}

func TestValidate_NestedObject(t *testing.T) {
	s := Schema{
		"axis": Object(Schema{
			"stroke": String(),
			"ticks":  Int(),
		}),
	}
	good := term.MapOf("axis", term.MapOf("stroke", "black", "ticks", 5))
	if err := Validate(s, good); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	bad := term.MapOf("axis", term.MapOf("stroke", "black", "ticks", "five"))
	if err := Validate(s, bad); err == nil {
		t.Fatal("Validate() should fail on nested type mismatch")
	}
}

func TestValidateFields(t *testing.T) {
	m := term.MapOf("title", "sales")

	if err := ValidateFields(chartSchema(), m, "title"); err != nil {
		t.Fatalf("ValidateFields(title) error = %v", err)
	}
	if err := ValidateFields(chartSchema(), m, "width"); err == nil {
		t.Error("ValidateFields(width) should fail: field missing")
	}
	if err := ValidateFields(chartSchema(), m, "unknown"); err == nil {
		t.Error("ValidateFields(unknown) should fail: not in schema")
	}
	if err := ValidateFields(chartSchema(), m); err != nil {
		t.Errorf("ValidateFields() with no fields = %v, want nil", err)
	}
}

func TestParseType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"string", "string"},
		{"int", "int"},
		{"float", "float"},
		{"bool", "bool"},
		{"any", "any"},
		{"[string]", "[string]"},
		{"[[int]]", "[[int]]"},
	}
	for _, tc := range cases {
		typ, err := ParseType(tc.in)
		if err != nil {
			t.Errorf("ParseType(%q) error = %v", tc.in, err)
			continue
		}
		if typ.Name() != tc.want {
			t.Errorf("ParseType(%q).Name() = %q, want %q", tc.in, typ.Name(), tc.want)
		}
	}

	if _, err := ParseType("datetime"); err == nil {
		t.Error("ParseType(datetime) should fail")
	}
}

func TestCustomType(t *testing.T) {
	positive := Custom("positive", func(v any) error {
		n, ok := v.(int)
		if !ok || n <= 0 {
			return errors.New("must be a positive int")
		}
		return nil
	})
	s := Schema{"width": positive}

	if err := Validate(s, term.MapOf("width", 400)); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if err := Validate(s, term.MapOf("width", -1)); err == nil {
		t.Error("Validate() should reject negative width")
	}
}

func TestIntType_AcceptsWholeFloats(t *testing.T) {
	if err := Int().Validate(float64(400)); err != nil {
		t.Errorf("whole float should validate as int: %v", err)
	}
	if err := Int().Validate(400.5); err == nil {
		t.Error("fractional float should not validate as int")
	}
}
