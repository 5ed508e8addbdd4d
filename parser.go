package corvus

import (
	"strconv"
)

// Operator precedence levels, lowest to highest. The table below maps
// each infix-capable token kind to its level; parsing priority is
// decided by data lookup, not by per-level grammar productions.
const (
	PRECEDENCE_LOWEST = iota
	PRECEDENCE_EQUALITY
	PRECEDENCE_RELATIONAL
	PRECEDENCE_ADDITIVE
	PRECEDENCE_MULTIPLICATIVE
	PRECEDENCE_PREFIX
	PRECEDENCE_CALL
)

var infixPrecedences = map[string]int{
	TOKEN_EQ:     PRECEDENCE_EQUALITY,
	TOKEN_NE:     PRECEDENCE_EQUALITY,
	TOKEN_LT:     PRECEDENCE_RELATIONAL,
	TOKEN_GT:     PRECEDENCE_RELATIONAL,
	TOKEN_PLUS:   PRECEDENCE_ADDITIVE,
	TOKEN_DASH:   PRECEDENCE_ADDITIVE,
	TOKEN_STAR:   PRECEDENCE_MULTIPLICATIVE,
	TOKEN_SLASH:  PRECEDENCE_MULTIPLICATIVE,
	TOKEN_LPAREN: PRECEDENCE_CALL,
}

type Parser struct {
	lexer        *Lexer
	currentToken Token
	errors       []ParseError
}

func NewParser(lexer *Lexer) Parser {
	self := Parser{
		lexer: lexer,
	}
	self.advanceToken()
	return self
}

func (self *Parser) advanceToken() Token {
	current := self.currentToken
	self.currentToken = self.lexer.NextToken()
	return current
}

func (self *Parser) checkCurrent(kind string) bool {
	return self.currentToken.Kind == kind
}

func (self *Parser) expectCurrent(kind string) (Token, error) {
	current := self.currentToken
	if current.Kind != kind {
		return Token{}, NewParseError(
			current.Location,
			"expected %s, found %s",
			quote(kind), quote(current.String()))
	}
	self.advanceToken()
	return current, nil
}

// synchronize skips tokens up to the next statement boundary so that a
// single malformed statement does not suppress diagnostics for the rest
// of the input.
func (self *Parser) synchronize() {
	for !self.checkCurrent(TOKEN_EOF) {
		if self.checkCurrent(TOKEN_SEMICOLON) || self.checkCurrent(TOKEN_RBRACE) {
			self.advanceToken()
			return
		}
		self.advanceToken()
	}
}

// ParseProgram parses the whole token stream. Parsing always runs to the
// end of the input: recoverable syntax errors are collected and returned
// alongside the program, and a program with any errors must not be
// evaluated.
func (self *Parser) ParseProgram() (AstProgram, []ParseError) {
	location := self.currentToken.Location
	statements := []AstStatement{}
	for !self.checkCurrent(TOKEN_EOF) {
		statement, err := self.ParseStatement()
		if err != nil {
			self.recordError(err)
			self.synchronize()
			continue
		}
		statements = append(statements, statement)
	}
	return AstProgram{location, statements}, self.errors
}

func (self *Parser) recordError(err error) {
	if parseError, ok := err.(ParseError); ok {
		self.errors = append(self.errors, parseError)
		return
	}
	self.errors = append(self.errors, NewParseError(nil, "%s", err.Error()))
}

func (self *Parser) ParseStatement() (AstStatement, error) {
	switch self.currentToken.Kind {
	case TOKEN_LET:
		return self.parseStatementLet()
	case TOKEN_RETURN:
		return self.parseStatementReturn()
	}
	return self.parseStatementExpression()
}

func (self *Parser) parseStatementLet() (AstStatement, error) {
	let, err := self.expectCurrent(TOKEN_LET)
	if err != nil {
		return nil, err
	}
	name, err := self.expectCurrent(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := self.expectCurrent(TOKEN_ASSIGN); err != nil {
		return nil, err
	}
	value, err := self.ParseExpression()
	if err != nil {
		return nil, err
	}
	if self.checkCurrent(TOKEN_SEMICOLON) {
		self.advanceToken()
	}
	return AstStatementLet{let.Location, name.Literal, value}, nil
}

func (self *Parser) parseStatementReturn() (AstStatement, error) {
	ret, err := self.expectCurrent(TOKEN_RETURN)
	if err != nil {
		return nil, err
	}

	// A bare return is permitted at the end of a block or input.
	if self.checkCurrent(TOKEN_SEMICOLON) {
		self.advanceToken()
		return AstStatementReturn{ret.Location, nil}, nil
	}
	if self.checkCurrent(TOKEN_RBRACE) || self.checkCurrent(TOKEN_EOF) {
		return AstStatementReturn{ret.Location, nil}, nil
	}

	value, err := self.ParseExpression()
	if err != nil {
		return nil, err
	}
	if self.checkCurrent(TOKEN_SEMICOLON) {
		self.advanceToken()
	}
	return AstStatementReturn{ret.Location, value}, nil
}

func (self *Parser) parseStatementExpression() (AstStatement, error) {
	expression, err := self.ParseExpression()
	if err != nil {
		return nil, err
	}
	if self.checkCurrent(TOKEN_SEMICOLON) {
		self.advanceToken()
	}
	return AstStatementExpression{expression.ExpressionLocation(), expression}, nil
}

func (self *Parser) parseBlock() (AstBlock, error) {
	brace, err := self.expectCurrent(TOKEN_LBRACE)
	if err != nil {
		return AstBlock{}, err
	}
	statements := []AstStatement{}
	for !self.checkCurrent(TOKEN_RBRACE) && !self.checkCurrent(TOKEN_EOF) {
		statement, err := self.ParseStatement()
		if err != nil {
			return AstBlock{}, err
		}
		statements = append(statements, statement)
	}
	if _, err := self.expectCurrent(TOKEN_RBRACE); err != nil {
		return AstBlock{}, err
	}
	return AstBlock{brace.Location, statements}, nil
}

func (self *Parser) ParseExpression() (AstExpression, error) {
	return self.parseExpression(PRECEDENCE_LOWEST)
}

// parseExpression implements precedence climbing: parse a prefix
// position, then keep consuming infix operators binding tighter than
// minPrecedence. Left associativity falls out of re-using an operator's
// own precedence as the threshold for its right operand.
func (self *Parser) parseExpression(minPrecedence int) (AstExpression, error) {
	left, err := self.parsePrefixPosition()
	if err != nil {
		return nil, err
	}

	for {
		precedence, ok := infixPrecedences[self.currentToken.Kind]
		if !ok || precedence <= minPrecedence {
			return left, nil
		}

		if self.checkCurrent(TOKEN_LPAREN) {
			left, err = self.parseExpressionCall(left)
			if err != nil {
				return nil, err
			}
			continue
		}

		operator := self.advanceToken()
		right, err := self.parseExpression(precedence)
		if err != nil {
			return nil, err
		}
		left = AstExpressionInfix{operator.Location, operator.Kind, left, right}
	}
}

func (self *Parser) parsePrefixPosition() (AstExpression, error) {
	switch self.currentToken.Kind {
	case TOKEN_IDENTIFIER:
		token := self.advanceToken()
		return AstExpressionIdentifier{token.Location, token.Literal}, nil
	case TOKEN_INTEGER:
		token := self.advanceToken()
		value, err := strconv.ParseInt(token.Literal, 10, 64)
		if err != nil {
			return nil, NewParseError(
				token.Location,
				"could not parse %s as an integer",
				quote(token.Literal))
		}
		return AstExpressionInteger{token.Location, value}, nil
	case TOKEN_TRUE, TOKEN_FALSE:
		token := self.advanceToken()
		return AstExpressionBoolean{token.Location, token.Kind == TOKEN_TRUE}, nil
	case TOKEN_BANG, TOKEN_DASH:
		token := self.advanceToken()
		operand, err := self.parseExpression(PRECEDENCE_PREFIX)
		if err != nil {
			return nil, err
		}
		return AstExpressionPrefix{token.Location, token.Kind, operand}, nil
	case TOKEN_LPAREN:
		self.advanceToken()
		expression, err := self.ParseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := self.expectCurrent(TOKEN_RPAREN); err != nil {
			return nil, err
		}
		return expression, nil
	case TOKEN_IF:
		return self.parseExpressionIf()
	case TOKEN_FN:
		return self.parseExpressionFunction()
	}

	return nil, NewParseError(
		self.currentToken.Location,
		"expected expression, found %s",
		quote(self.currentToken.String()))
}

func (self *Parser) parseExpressionIf() (AstExpression, error) {
	token, err := self.expectCurrent(TOKEN_IF)
	if err != nil {
		return nil, err
	}
	if _, err := self.expectCurrent(TOKEN_LPAREN); err != nil {
		return nil, err
	}
	condition, err := self.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := self.expectCurrent(TOKEN_RPAREN); err != nil {
		return nil, err
	}
	consequence, err := self.parseBlock()
	if err != nil {
		return nil, err
	}

	var alternative *AstBlock
	if self.checkCurrent(TOKEN_ELSE) {
		self.advanceToken()
		block, err := self.parseBlock()
		if err != nil {
			return nil, err
		}
		alternative = &block
	}
	return AstExpressionIf{token.Location, condition, consequence, alternative}, nil
}

func (self *Parser) parseExpressionFunction() (AstExpression, error) {
	token, err := self.expectCurrent(TOKEN_FN)
	if err != nil {
		return nil, err
	}
	if _, err := self.expectCurrent(TOKEN_LPAREN); err != nil {
		return nil, err
	}

	parameters := []string{}
	for !self.checkCurrent(TOKEN_RPAREN) {
		parameter, err := self.expectCurrent(TOKEN_IDENTIFIER)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, parameter.Literal)
		if !self.checkCurrent(TOKEN_COMMA) {
			break
		}
		self.advanceToken()
	}
	if _, err := self.expectCurrent(TOKEN_RPAREN); err != nil {
		return nil, err
	}

	body, err := self.parseBlock()
	if err != nil {
		return nil, err
	}
	return AstExpressionFunction{token.Location, parameters, body}, nil
}

func (self *Parser) parseExpressionCall(function AstExpression) (AstExpression, error) {
	token, err := self.expectCurrent(TOKEN_LPAREN)
	if err != nil {
		return nil, err
	}

	arguments := []AstExpression{}
	for !self.checkCurrent(TOKEN_RPAREN) {
		argument, err := self.ParseExpression()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)
		if !self.checkCurrent(TOKEN_COMMA) {
			break
		}
		self.advanceToken()
	}
	if _, err := self.expectCurrent(TOKEN_RPAREN); err != nil {
		return nil, err
	}
	return AstExpressionCall{token.Location, function, arguments}, nil
}
