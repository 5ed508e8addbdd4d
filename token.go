package corvus

// Token Kinds
const (
	// Meta
	TOKEN_EOF     = "end-of-file"
	TOKEN_ILLEGAL = "illegal"
	// Identifiers and Literals
	TOKEN_IDENTIFIER = "identifier"
	TOKEN_INTEGER    = "integer"
	// Operators
	TOKEN_ASSIGN = "="
	TOKEN_PLUS   = "+"
	TOKEN_DASH   = "-"
	TOKEN_BANG   = "!"
	TOKEN_STAR   = "*"
	TOKEN_SLASH  = "/"
	TOKEN_EQ     = "=="
	TOKEN_NE     = "!="
	TOKEN_LT     = "<"
	TOKEN_GT     = ">"
	// Delimiters
	TOKEN_COMMA     = ","
	TOKEN_SEMICOLON = ";"
	TOKEN_LPAREN    = "("
	TOKEN_RPAREN    = ")"
	TOKEN_LBRACE    = "{"
	TOKEN_RBRACE    = "}"
	// Keywords
	TOKEN_FN     = "fn"
	TOKEN_LET    = "let"
	TOKEN_TRUE   = "true"
	TOKEN_FALSE  = "false"
	TOKEN_IF     = "if"
	TOKEN_ELSE   = "else"
	TOKEN_RETURN = "return"
)

type Token struct {
	Kind     string
	Literal  string
	Location *SourceLocation // Optional
}

func (self Token) String() string {
	return self.Kind
}
