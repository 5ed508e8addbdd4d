package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullTypename(t *testing.T) {
	ctx := &Context{}
	null := ctx.NewNull()
	assert.Equal(t, "null", null.Typename())
}

func TestNullString(t *testing.T) {
	ctx := &Context{}
	null := ctx.NewNull()
	assert.Equal(t, "null", null.String())
}

func TestNullEqual(t *testing.T) {
	ctx := &Context{}
	assert.True(t, ctx.NewNull().Equal(ctx.NewNull()))
	assert.False(t, ctx.NewNull().Equal(ctx.NewBoolean(false)))
	assert.False(t, ctx.NewNull().Equal(ctx.NewInteger(0)))
}

func TestBooleanTypename(t *testing.T) {
	ctx := &Context{}
	{
		boolean := ctx.NewBoolean(true)
		assert.Equal(t, "boolean", boolean.Typename())
	}
	{
		boolean := ctx.NewBoolean(false)
		assert.Equal(t, "boolean", boolean.Typename())
	}
}

func TestBooleanString(t *testing.T) {
	ctx := &Context{}
	{
		boolean := ctx.NewBoolean(true)
		assert.Equal(t, "true", boolean.String())
	}
	{
		boolean := ctx.NewBoolean(false)
		assert.Equal(t, "false", boolean.String())
	}
}

func TestBooleanEqual(t *testing.T) {
	ctx := &Context{}
	assert.True(t, ctx.NewBoolean(true).Equal(ctx.NewBoolean(true)))
	assert.True(t, ctx.NewBoolean(false).Equal(ctx.NewBoolean(false)))
	assert.False(t, ctx.NewBoolean(true).Equal(ctx.NewBoolean(false)))
	assert.False(t, ctx.NewBoolean(false).Equal(ctx.NewNull()))
	assert.False(t, ctx.NewBoolean(true).Equal(ctx.NewInteger(1)))
}

func TestIntegerTypename(t *testing.T) {
	ctx := &Context{}
	integer := ctx.NewInteger(123)
	assert.Equal(t, "integer", integer.Typename())
}

func TestIntegerString(t *testing.T) {
	ctx := &Context{}
	assert.Equal(t, "123", ctx.NewInteger(123).String())
	assert.Equal(t, "-123", ctx.NewInteger(-123).String())
	assert.Equal(t, "0", ctx.NewInteger(0).String())
}

func TestIntegerEqual(t *testing.T) {
	ctx := &Context{}
	assert.True(t, ctx.NewInteger(1).Equal(ctx.NewInteger(1)))
	assert.False(t, ctx.NewInteger(1).Equal(ctx.NewInteger(2)))
	assert.False(t, ctx.NewInteger(1).Equal(ctx.NewBoolean(true)))
}

func TestFunctionTypename(t *testing.T) {
	ctx := &Context{}
	function := ctx.NewFunction([]string{"x"}, AstBlock{}, NewEnvironment(nil))
	assert.Equal(t, "function", function.Typename())
}

func TestFunctionString(t *testing.T) {
	ctx := &Context{}
	body := AstBlock{
		Statements: []AstStatement{
			AstStatementExpression{
				Expression: AstExpressionInfix{
					Operator: TOKEN_PLUS,
					Left:     AstExpressionIdentifier{Name: "x"},
					Right:    AstExpressionIdentifier{Name: "y"},
				},
			},
		},
	}
	function := ctx.NewFunction([]string{"x", "y"}, body, NewEnvironment(nil))
	assert.Equal(t, "fn(x, y) { (x + y) }", function.String())
}

func TestFunctionEqualIsIdentity(t *testing.T) {
	ctx := &Context{}
	env := NewEnvironment(nil)
	a := ctx.NewFunction([]string{"x"}, AstBlock{}, env)
	b := ctx.NewFunction([]string{"x"}, AstBlock{}, env)
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(ctx.NewNull()))
}

func TestFunctionStringWithCyclicEnvironment(t *testing.T) {
	// A function bound into its own captured environment must still
	// print in bounded time: String renders parameters and body only.
	ctx := &Context{}
	env := NewEnvironment(nil)
	function := ctx.NewFunction([]string{}, AstBlock{}, env)
	env.Let("f", function)
	assert.Equal(t, "fn() { }", function.String())
}

func TestReturnValueUnwrapsInString(t *testing.T) {
	ctx := &Context{}
	returned := ctx.NewReturnValue(ctx.NewInteger(7))
	assert.Equal(t, "7", returned.String())
	assert.True(t, returned.Equal(ctx.NewReturnValue(ctx.NewInteger(7))))
	assert.False(t, returned.Equal(ctx.NewInteger(7)))
}

func TestIsTruthy(t *testing.T) {
	ctx := &Context{}
	assert.False(t, isTruthy(ctx.NewNull()))
	assert.False(t, isTruthy(ctx.NewBoolean(false)))
	assert.True(t, isTruthy(ctx.NewBoolean(true)))
	assert.True(t, isTruthy(ctx.NewInteger(0)))
	assert.True(t, isTruthy(ctx.NewInteger(-1)))
	assert.True(t, isTruthy(ctx.NewFunction(nil, AstBlock{}, nil)))
}
