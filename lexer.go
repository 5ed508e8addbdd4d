package corvus

import (
	"unicode"
)

// Lexer turns source text into a flat token stream. It makes no parsing
// decisions: unknown runes are produced as illegal tokens for the parser
// to report, and the stream is always terminated by an end-of-file token.
type Lexer struct {
	runes    []rune
	location *SourceLocation // Optional
	position int

	keywords map[string]string
}

func NewLexer(source string, location *SourceLocation) Lexer {
	keywords := map[string]string{
		TOKEN_FN:     TOKEN_FN,
		TOKEN_LET:    TOKEN_LET,
		TOKEN_TRUE:   TOKEN_TRUE,
		TOKEN_FALSE:  TOKEN_FALSE,
		TOKEN_IF:     TOKEN_IF,
		TOKEN_ELSE:   TOKEN_ELSE,
		TOKEN_RETURN: TOKEN_RETURN,
	}

	return Lexer{
		runes:    []rune(source),
		location: location,
		position: 0,

		keywords: keywords,
	}
}

func (self *Lexer) currentRune() rune {
	if self.position >= len(self.runes) {
		return rune(0)
	}
	return self.runes[self.position]
}

func (self *Lexer) peekRune() rune {
	if self.position+1 >= len(self.runes) {
		return rune(0)
	}
	return self.runes[self.position+1]
}

func (self *Lexer) isEof() bool {
	return self.position >= len(self.runes)
}

func (self *Lexer) advanceRune() {
	if self.isEof() {
		return
	}
	if self.location != nil && self.currentRune() == '\n' {
		self.location.Line += 1
	}
	self.position += 1
}

func (self *Lexer) currentLocation() *SourceLocation {
	if self.location == nil {
		return nil
	}
	return &SourceLocation{self.location.File, self.location.Line}
}

func (self *Lexer) skipWhitespace() {
	for !self.isEof() && unicode.IsSpace(self.currentRune()) {
		self.advanceRune()
	}
}

func (self *Lexer) skipComment() {
	if self.currentRune() != '#' {
		return
	}
	for !self.isEof() && self.currentRune() != '\n' {
		self.advanceRune()
	}
	self.advanceRune()
}

func (self *Lexer) skipWhiteSpaceAndComments() {
	for !self.isEof() && (unicode.IsSpace(self.currentRune()) || self.currentRune() == '#') {
		self.skipWhitespace()
		self.skipComment()
	}
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func (self *Lexer) lexKeywordOrIdentifier() Token {
	location := self.currentLocation()
	literal := ""
	for isIdentifierRune(self.currentRune()) || unicode.IsDigit(self.currentRune()) {
		literal += string(self.currentRune())
		self.advanceRune()
	}

	keyword, ok := self.keywords[literal]
	if ok {
		return Token{
			Kind:     keyword,
			Literal:  literal,
			Location: location,
		}
	}
	return Token{
		Kind:     TOKEN_IDENTIFIER,
		Literal:  literal,
		Location: location,
	}
}

func (self *Lexer) lexInteger() Token {
	location := self.currentLocation()
	literal := ""
	for unicode.IsDigit(self.currentRune()) {
		literal += string(self.currentRune())
		self.advanceRune()
	}
	return Token{
		Kind:     TOKEN_INTEGER,
		Literal:  literal,
		Location: location,
	}
}

func (self *Lexer) NextToken() Token {
	self.skipWhiteSpaceAndComments()
	location := self.currentLocation()
	if self.isEof() {
		return Token{
			Kind:     TOKEN_EOF,
			Literal:  "",
			Location: location,
		}
	}

	// Literals, Identifiers, and Keywords
	if isIdentifierRune(self.currentRune()) {
		return self.lexKeywordOrIdentifier()
	}
	if unicode.IsDigit(self.currentRune()) {
		return self.lexInteger()
	}

	// Operators and Delimiters
	kind := ""
	switch self.currentRune() {
	case '=':
		if self.peekRune() == '=' {
			self.advanceRune()
			kind = TOKEN_EQ
		} else {
			kind = TOKEN_ASSIGN
		}
	case '!':
		if self.peekRune() == '=' {
			self.advanceRune()
			kind = TOKEN_NE
		} else {
			kind = TOKEN_BANG
		}
	case '+':
		kind = TOKEN_PLUS
	case '-':
		kind = TOKEN_DASH
	case '*':
		kind = TOKEN_STAR
	case '/':
		kind = TOKEN_SLASH
	case '<':
		kind = TOKEN_LT
	case '>':
		kind = TOKEN_GT
	case ',':
		kind = TOKEN_COMMA
	case ';':
		kind = TOKEN_SEMICOLON
	case '(':
		kind = TOKEN_LPAREN
	case ')':
		kind = TOKEN_RPAREN
	case '{':
		kind = TOKEN_LBRACE
	case '}':
		kind = TOKEN_RBRACE
	}
	if kind != "" {
		self.advanceRune()
		return Token{
			Kind:     kind,
			Literal:  kind,
			Location: location,
		}
	}

	literal := string(self.currentRune())
	self.advanceRune()
	return Token{
		Kind:     TOKEN_ILLEGAL,
		Literal:  literal,
		Location: location,
	}
}
