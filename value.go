package corvus

import (
	"fmt"
	"strconv"
	"strings"
)

type Value interface {
	Typename() string
	String() string
	Equal(Value) bool
}

// DefaultMaxCallDepth bounds function-call recursion so deep recursion
// fails with a reported runtime error instead of exhausting the host
// call stack.
const DefaultMaxCallDepth = 1024

type Context struct {
	Null            *Null
	BaseEnvironment *Environment
	MaxCallDepth    int

	callDepth int
}

func NewContext() Context {
	ctx := Context{}
	ctx.Null = ctx.NewNull()
	ctx.BaseEnvironment = NewEnvironment(nil)
	ctx.MaxCallDepth = DefaultMaxCallDepth
	return ctx
}

func (ctx *Context) NewNull() *Null {
	return &Null{}
}

func (ctx *Context) NewBoolean(data bool) *Boolean {
	return &Boolean{data}
}

func (ctx *Context) NewInteger(data int64) *Integer {
	return &Integer{data}
}

func (ctx *Context) NewFunction(parameters []string, body AstBlock, env *Environment) *Function {
	return &Function{parameters, body, env}
}

func (ctx *Context) NewReturnValue(data Value) *ReturnValue {
	return &ReturnValue{data}
}

func (ctx *Context) enterCall(location *SourceLocation) error {
	if ctx.callDepth >= ctx.MaxCallDepth {
		return NewError(location, "call depth limit exceeded")
	}
	ctx.callDepth += 1
	return nil
}

func (ctx *Context) leaveCall() {
	ctx.callDepth -= 1
}

type Null struct{}

func (self *Null) Typename() string {
	return "null"
}

func (self *Null) String() string {
	return "null"
}

func (self *Null) Equal(other Value) bool {
	_, ok := other.(*Null)
	return ok
}

type Boolean struct {
	data bool
}

func (self *Boolean) Typename() string {
	return "boolean"
}

func (self *Boolean) String() string {
	if self.data {
		return "true"
	}
	return "false"
}

func (self *Boolean) Equal(other Value) bool {
	othr, ok := other.(*Boolean)
	if !ok {
		return false
	}
	return self.data == othr.data
}

type Integer struct {
	data int64
}

func (self *Integer) Typename() string {
	return "integer"
}

func (self *Integer) String() string {
	return strconv.FormatInt(self.data, 10)
}

func (self *Integer) Equal(other Value) bool {
	othr, ok := other.(*Integer)
	if !ok {
		return false
	}
	return self.data == othr.data
}

// Function is a function value paired with the environment active at its
// definition site. The captured environment may (transitively) contain
// the function itself, so String and Equal must never traverse it.
type Function struct {
	parameters []string
	body       AstBlock
	env        *Environment
}

func (self *Function) Typename() string {
	return "function"
}

func (self *Function) String() string {
	return fmt.Sprintf("fn(%s) %s", strings.Join(self.parameters, ", "), self.body.String())
}

func (self *Function) Equal(other Value) bool {
	othr, ok := other.(*Function)
	if !ok {
		return false
	}
	return self == othr
}

// ReturnValue propagates an early return up through block evaluation. It
// is unwrapped at the boundary of the function call that produced it and
// is never visible to user code.
type ReturnValue struct {
	data Value
}

func (self *ReturnValue) Typename() string {
	return "return value"
}

func (self *ReturnValue) String() string {
	return self.data.String()
}

func (self *ReturnValue) Equal(other Value) bool {
	othr, ok := other.(*ReturnValue)
	if !ok {
		return false
	}
	return self.data.Equal(othr.data)
}
