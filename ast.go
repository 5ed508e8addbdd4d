package corvus

import (
	"fmt"
	"strconv"
	"strings"
)

// AST nodes are created once by the parser and immutable thereafter, so
// a parsed program may be evaluated any number of times.

type AstExpression interface {
	ExpressionLocation() *SourceLocation
	String() string
	Eval(*Context, *Environment) (Value, error)
}

type AstStatement interface {
	StatementLocation() *SourceLocation
	String() string
	Eval(*Context, *Environment) (Value, error)
}

type AstProgram struct {
	Location   *SourceLocation // Optional
	Statements []AstStatement
}

func (self AstProgram) String() string {
	var sb strings.Builder
	for _, statement := range self.Statements {
		sb.WriteString(statement.String())
	}
	return sb.String()
}

type AstStatementLet struct {
	Location *SourceLocation // Optional
	Name     string
	Value    AstExpression
}

func (self AstStatementLet) StatementLocation() *SourceLocation {
	return self.Location
}

func (self AstStatementLet) String() string {
	return fmt.Sprintf("let %s = %s;", self.Name, self.Value.String())
}

type AstStatementReturn struct {
	Location *SourceLocation // Optional
	Value    AstExpression   // Optional
}

func (self AstStatementReturn) StatementLocation() *SourceLocation {
	return self.Location
}

func (self AstStatementReturn) String() string {
	if self.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", self.Value.String())
}

type AstStatementExpression struct {
	Location   *SourceLocation // Optional
	Expression AstExpression
}

func (self AstStatementExpression) StatementLocation() *SourceLocation {
	return self.Location
}

func (self AstStatementExpression) String() string {
	return self.Expression.String()
}

type AstBlock struct {
	Location   *SourceLocation // Optional
	Statements []AstStatement
}

func (self AstBlock) StatementLocation() *SourceLocation {
	return self.Location
}

func (self AstBlock) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, statement := range self.Statements {
		sb.WriteString(statement.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

type AstExpressionIdentifier struct {
	Location *SourceLocation // Optional
	Name     string
}

func (self AstExpressionIdentifier) ExpressionLocation() *SourceLocation {
	return self.Location
}

func (self AstExpressionIdentifier) String() string {
	return self.Name
}

type AstExpressionInteger struct {
	Location *SourceLocation // Optional
	Value    int64
}

func (self AstExpressionInteger) ExpressionLocation() *SourceLocation {
	return self.Location
}

func (self AstExpressionInteger) String() string {
	return strconv.FormatInt(self.Value, 10)
}

type AstExpressionBoolean struct {
	Location *SourceLocation // Optional
	Value    bool
}

func (self AstExpressionBoolean) ExpressionLocation() *SourceLocation {
	return self.Location
}

func (self AstExpressionBoolean) String() string {
	if self.Value {
		return "true"
	}
	return "false"
}

type AstExpressionPrefix struct {
	Location *SourceLocation // Optional
	Operator string
	Operand  AstExpression
}

func (self AstExpressionPrefix) ExpressionLocation() *SourceLocation {
	return self.Location
}

func (self AstExpressionPrefix) String() string {
	return fmt.Sprintf("(%s%s)", self.Operator, self.Operand.String())
}

type AstExpressionInfix struct {
	Location *SourceLocation // Optional
	Operator string
	Left     AstExpression
	Right    AstExpression
}

func (self AstExpressionInfix) ExpressionLocation() *SourceLocation {
	return self.Location
}

func (self AstExpressionInfix) String() string {
	return fmt.Sprintf("(%s %s %s)", self.Left.String(), self.Operator, self.Right.String())
}

type AstExpressionIf struct {
	Location    *SourceLocation // Optional
	Condition   AstExpression
	Consequence AstBlock
	Alternative *AstBlock // Optional
}

func (self AstExpressionIf) ExpressionLocation() *SourceLocation {
	return self.Location
}

func (self AstExpressionIf) String() string {
	if self.Alternative == nil {
		return fmt.Sprintf("if %s %s", self.Condition.String(), self.Consequence.String())
	}
	return fmt.Sprintf(
		"if %s %s else %s",
		self.Condition.String(),
		self.Consequence.String(),
		self.Alternative.String())
}

type AstExpressionFunction struct {
	Location   *SourceLocation // Optional
	Parameters []string
	Body       AstBlock
}

func (self AstExpressionFunction) ExpressionLocation() *SourceLocation {
	return self.Location
}

func (self AstExpressionFunction) String() string {
	return fmt.Sprintf("fn(%s) %s", strings.Join(self.Parameters, ", "), self.Body.String())
}

type AstExpressionCall struct {
	Location  *SourceLocation // Optional
	Function  AstExpression
	Arguments []AstExpression
}

func (self AstExpressionCall) ExpressionLocation() *SourceLocation {
	return self.Location
}

func (self AstExpressionCall) String() string {
	arguments := make([]string, len(self.Arguments))
	for i, argument := range self.Arguments {
		arguments[i] = argument.String()
	}
	return fmt.Sprintf("%s(%s)", self.Function.String(), strings.Join(arguments, ", "))
}
