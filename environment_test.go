package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentLetAndGet(t *testing.T) {
	ctx := NewContext()
	env := NewEnvironment(nil)

	_, ok := env.Get("a")
	assert.False(t, ok)

	env.Let("a", ctx.NewInteger(1))
	value, ok := env.Get("a")
	require.True(t, ok)
	assert.True(t, value.Equal(ctx.NewInteger(1)))

	env.Let("a", ctx.NewInteger(2))
	value, ok = env.Get("a")
	require.True(t, ok)
	assert.True(t, value.Equal(ctx.NewInteger(2)))
}

func TestEnvironmentOuterLookup(t *testing.T) {
	ctx := NewContext()
	outer := NewEnvironment(nil)
	outer.Let("a", ctx.NewInteger(1))
	outer.Let("b", ctx.NewInteger(2))

	inner := NewEnvironment(outer)
	inner.Let("b", ctx.NewInteger(3))

	{
		value, ok := inner.Get("a")
		require.True(t, ok)
		assert.True(t, value.Equal(ctx.NewInteger(1)))
	}
	{
		value, ok := inner.Get("b")
		require.True(t, ok)
		assert.True(t, value.Equal(ctx.NewInteger(3)))
	}
	{
		_, ok := inner.Get("c")
		assert.False(t, ok)
	}
}

func TestEnvironmentShadowingDoesNotMutateOuter(t *testing.T) {
	ctx := NewContext()
	outer := NewEnvironment(nil)
	outer.Let("a", ctx.NewInteger(1))

	inner := NewEnvironment(outer)
	inner.Let("a", ctx.NewInteger(2))

	value, ok := outer.Get("a")
	require.True(t, ok)
	assert.True(t, value.Equal(ctx.NewInteger(1)))
}

func TestEnvironmentSharedMutationIsVisible(t *testing.T) {
	// Environments are shared by reference: a binding written through
	// one holder is observed by every other holder.
	ctx := NewContext()
	shared := NewEnvironment(nil)
	a := NewEnvironment(shared)
	b := NewEnvironment(shared)

	shared.Let("x", ctx.NewInteger(1))
	{
		value, ok := a.Get("x")
		require.True(t, ok)
		assert.True(t, value.Equal(ctx.NewInteger(1)))
	}

	shared.Let("x", ctx.NewInteger(2))
	{
		value, ok := b.Get("x")
		require.True(t, ok)
		assert.True(t, value.Equal(ctx.NewInteger(2)))
	}
}

func TestEnvironmentNames(t *testing.T) {
	ctx := NewContext()
	outer := NewEnvironment(nil)
	outer.Let("outer", ctx.NewInteger(0))

	env := NewEnvironment(outer)
	env.Let("b", ctx.NewInteger(2))
	env.Let("a", ctx.NewInteger(1))

	// Local names only, sorted; the outer chain is not included.
	assert.Equal(t, []string{"a", "b"}, env.Names())
}

func TestEnvironmentNamesWithCyclicClosure(t *testing.T) {
	// A function stored in the environment it captures forms a
	// reference cycle; introspection must stay shallow and terminate.
	value := evalTestValue(t, "let f = fn() { f }; f();")
	function, ok := value.(*Function)
	require.True(t, ok)

	assert.Equal(t, []string{"f"}, function.env.Names())
	assert.Equal(t, "fn() { f }", function.String())

	// The cycle is closed: calling the returned function again yields
	// the same function value.
	again, err := AstExpressionCall{
		Function:  AstExpressionIdentifier{Name: "f"},
		Arguments: []AstExpression{},
	}.Eval(ptrToContext(), function.env)
	require.NoError(t, err)
	assert.True(t, value.Equal(again))
}

func ptrToContext() *Context {
	ctx := NewContext()
	return &ctx
}
