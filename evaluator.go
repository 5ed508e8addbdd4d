package corvus

// Evaluation walks the AST against an environment and produces a runtime
// value or a runtime error. Early returns travel as ReturnValue wrappers
// and runtime errors travel as Go errors; both short-circuit every
// enclosing evaluation step until consumed (the call boundary for
// returns, the caller of the whole program for errors).

func isTruthy(value Value) bool {
	switch value := value.(type) {
	case *Null:
		return false
	case *Boolean:
		return value.data
	}
	return true
}

func (self AstProgram) Eval(ctx *Context, env *Environment) (Value, error) {
	var result Value = ctx.Null
	for _, statement := range self.Statements {
		value, err := statement.Eval(ctx, env)
		if err != nil {
			return nil, err
		}
		if returned, ok := value.(*ReturnValue); ok {
			// A top-level return ends the program with its value.
			return returned.data, nil
		}
		result = value
	}
	return result, nil
}

func (self AstBlock) Eval(ctx *Context, env *Environment) (Value, error) {
	var result Value = ctx.Null
	for _, statement := range self.Statements {
		value, err := statement.Eval(ctx, env)
		if err != nil {
			return nil, err
		}
		if _, ok := value.(*ReturnValue); ok {
			// Propagate the wrapper as-is so nested blocks unwind too.
			return value, nil
		}
		result = value
	}
	return result, nil
}

func (self AstStatementLet) Eval(ctx *Context, env *Environment) (Value, error) {
	value, err := self.Value.Eval(ctx, env)
	if err != nil {
		return nil, err
	}
	env.Let(self.Name, value)
	return ctx.Null, nil
}

func (self AstStatementReturn) Eval(ctx *Context, env *Environment) (Value, error) {
	var value Value = ctx.Null
	if self.Value != nil {
		evaluated, err := self.Value.Eval(ctx, env)
		if err != nil {
			return nil, err
		}
		value = evaluated
	}
	return ctx.NewReturnValue(value), nil
}

func (self AstStatementExpression) Eval(ctx *Context, env *Environment) (Value, error) {
	return self.Expression.Eval(ctx, env)
}

func (self AstExpressionIdentifier) Eval(ctx *Context, env *Environment) (Value, error) {
	value, ok := env.Get(self.Name)
	if !ok {
		return nil, NewError(self.Location, "identifier not found: %s", self.Name)
	}
	return value, nil
}

func (self AstExpressionInteger) Eval(ctx *Context, env *Environment) (Value, error) {
	return ctx.NewInteger(self.Value), nil
}

func (self AstExpressionBoolean) Eval(ctx *Context, env *Environment) (Value, error) {
	return ctx.NewBoolean(self.Value), nil
}

func (self AstExpressionPrefix) Eval(ctx *Context, env *Environment) (Value, error) {
	operand, err := self.Operand.Eval(ctx, env)
	if err != nil {
		return nil, err
	}

	switch self.Operator {
	case TOKEN_BANG:
		return ctx.NewBoolean(!isTruthy(operand)), nil
	case TOKEN_DASH:
		integer, ok := operand.(*Integer)
		if !ok {
			return nil, NewError(self.Location, "unknown operator: -%s", operand.Typename())
		}
		return ctx.NewInteger(-integer.data), nil
	}
	return nil, NewError(self.Location, "unknown operator: %s%s", self.Operator, operand.Typename())
}

func (self AstExpressionInfix) Eval(ctx *Context, env *Environment) (Value, error) {
	left, err := self.Left.Eval(ctx, env)
	if err != nil {
		return nil, err
	}
	right, err := self.Right.Eval(ctx, env)
	if err != nil {
		return nil, err
	}

	if left.Typename() != right.Typename() {
		return nil, NewError(
			self.Location,
			"type mismatch: %s %s %s",
			left.Typename(), self.Operator, right.Typename())
	}

	lhs, lhsIsInteger := left.(*Integer)
	rhs, rhsIsInteger := right.(*Integer)
	if lhsIsInteger && rhsIsInteger {
		return self.evalIntegerInfix(ctx, lhs.data, rhs.data)
	}

	switch self.Operator {
	case TOKEN_EQ:
		return ctx.NewBoolean(left.Equal(right)), nil
	case TOKEN_NE:
		return ctx.NewBoolean(!left.Equal(right)), nil
	}
	return nil, NewError(
		self.Location,
		"unknown operator: %s %s %s",
		left.Typename(), self.Operator, right.Typename())
}

func (self AstExpressionInfix) evalIntegerInfix(ctx *Context, lhs int64, rhs int64) (Value, error) {
	switch self.Operator {
	case TOKEN_PLUS:
		return ctx.NewInteger(lhs + rhs), nil
	case TOKEN_DASH:
		return ctx.NewInteger(lhs - rhs), nil
	case TOKEN_STAR:
		return ctx.NewInteger(lhs * rhs), nil
	case TOKEN_SLASH:
		if rhs == 0 {
			return nil, NewError(self.Location, "division by zero")
		}
		return ctx.NewInteger(lhs / rhs), nil
	case TOKEN_LT:
		return ctx.NewBoolean(lhs < rhs), nil
	case TOKEN_GT:
		return ctx.NewBoolean(lhs > rhs), nil
	case TOKEN_EQ:
		return ctx.NewBoolean(lhs == rhs), nil
	case TOKEN_NE:
		return ctx.NewBoolean(lhs != rhs), nil
	}
	return nil, NewError(
		self.Location,
		"unknown operator: integer %s integer",
		self.Operator)
}

func (self AstExpressionIf) Eval(ctx *Context, env *Environment) (Value, error) {
	condition, err := self.Condition.Eval(ctx, env)
	if err != nil {
		return nil, err
	}

	if isTruthy(condition) {
		return self.Consequence.Eval(ctx, NewEnvironment(env))
	}
	if self.Alternative != nil {
		return self.Alternative.Eval(ctx, NewEnvironment(env))
	}
	return ctx.Null, nil
}

func (self AstExpressionFunction) Eval(ctx *Context, env *Environment) (Value, error) {
	// Capture the environment active at the definition site, not at
	// call time. A function bound by name into env can be reached from
	// its own body through this reference, which is what makes
	// recursion work and what creates closure/environment cycles.
	return ctx.NewFunction(self.Parameters, self.Body, env), nil
}

func (self AstExpressionCall) Eval(ctx *Context, env *Environment) (Value, error) {
	callee, err := self.Function.Eval(ctx, env)
	if err != nil {
		return nil, err
	}
	function, ok := callee.(*Function)
	if !ok {
		return nil, NewError(self.Location, "not a function: %s", callee.Typename())
	}

	// Arguments evaluate left-to-right in the caller's environment.
	arguments := make([]Value, len(self.Arguments))
	for i, argument := range self.Arguments {
		value, err := argument.Eval(ctx, env)
		if err != nil {
			return nil, err
		}
		arguments[i] = value
	}

	if len(arguments) != len(function.parameters) {
		return nil, NewError(
			self.Location,
			"wrong number of arguments: expected %d, got %d",
			len(function.parameters), len(arguments))
	}

	if err := ctx.enterCall(self.Location); err != nil {
		return nil, err
	}
	defer ctx.leaveCall()

	bound := NewEnvironment(function.env)
	for i, parameter := range function.parameters {
		bound.Let(parameter, arguments[i])
	}

	value, err := function.body.Eval(ctx, bound)
	if err != nil {
		return nil, err
	}
	if returned, ok := value.(*ReturnValue); ok {
		// The return signal never escapes the function that produced it.
		return returned.data, nil
	}
	return value, nil
}
