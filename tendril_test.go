package tendril_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/pkg/dsl"
	"github.com/aretw0/tendril/pkg/resolve"
	"github.com/aretw0/tendril/pkg/term"
)

func TestTransform_NilEnv(t *testing.T) {
	out, err := tendril.Transform(term.MapOf("x", tendril.Ref("A")), nil)
	require.NoError(t, err)
	assert.True(t, term.Equal(out, term.MapOf("x", term.Ref("A"))))
}

func TestTransform_OverridesWinOverDefaults(t *testing.T) {
	env := dsl.Env().Bind("TITLE", "default title").Bind("WIDTH", 400).Build()
	tmpl := dsl.Map().
		Set("title", dsl.Ref("TITLE")).
		Set("width", dsl.Ref("WIDTH")).
		Build()

	out, err := tendril.Transform(tmpl, env,
		tendril.WithOverrides(map[string]term.Term{"TITLE": term.Val("mine")}))
	require.NoError(t, err)
	assert.True(t, term.Equal(out, term.MapOf("title", "mine", "width", 400)))

	// The environment itself is untouched.
	bound, _ := env.Lookup("TITLE")
	assert.True(t, term.Equal(bound, term.Val("default title")))
}

func TestTransform_OverrideWithRMVPrunes(t *testing.T) {
	env := dsl.Env().Bind("TOOLTIP", term.MapOf("content", "data")).Build()
	tmpl := dsl.Map().
		Set("mark", "point").
		Set("tooltip", dsl.Ref("TOOLTIP")).
		Build()

	out, err := tendril.Transform(tmpl, env,
		tendril.WithOverrides(map[string]term.Term{"TOOLTIP": tendril.RMV}))
	require.NoError(t, err)
	assert.True(t, term.Equal(out, term.MapOf("mark", "point")))
}

func TestTransform_Strict(t *testing.T) {
	tmpl := term.MapOf("x", tendril.Ref("MISSING"))
	_, err := tendril.Transform(tmpl, nil, tendril.WithStrict())
	assert.ErrorIs(t, err, resolve.ErrUnresolved)
}

func TestTransform_MaxDepth(t *testing.T) {
	env := dsl.Env().Bind("A", tendril.Ref("B")).Bind("B", tendril.Ref("A")).Build()
	_, err := tendril.Transform(tendril.Ref("A"), env, tendril.WithMaxDepth(10))
	var cyc *resolve.CyclicError
	assert.ErrorAs(t, err, &cyc)
}

func TestTransform_Hooks(t *testing.T) {
	var misses int
	env := dsl.Env().Bind("A", 1).Build()
	_, err := tendril.Transform(term.MapOf("x", tendril.Ref("A")), env,
		tendril.WithHooks(resolve.Hooks{OnCacheMiss: func(string) { misses++ }}))
	require.NoError(t, err)
	assert.Equal(t, 1, misses)
}
