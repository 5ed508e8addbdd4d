package corvus

import (
	"fmt"
	"strings"
)

func quote(s string) string {
	if strings.Contains(s, "`") {
		return fmt.Sprintf(`"%s"`, s)
	}
	return fmt.Sprintf("`%s`", s)
}

type SourceLocation struct {
	File string
	Line int
}

type ParseError struct {
	Location *SourceLocation // Optional
	why      string
}

func (self ParseError) Error() string {
	return self.why
}

func NewParseError(location *SourceLocation, format string, args ...any) ParseError {
	return ParseError{
		Location: location,
		why:      fmt.Sprintf(format, args...),
	}
}

// Error is a runtime error produced during evaluation. Runtime errors
// propagate unconditionally through every evaluation step out to the
// caller of the whole program; the language has no catch construct.
type Error struct {
	Location *SourceLocation // Optional
	Message  string
}

func (self Error) Error() string {
	return self.Message
}

func NewError(location *SourceLocation, format string, args ...any) Error {
	return Error{
		Location: location,
		Message:  fmt.Sprintf(format, args...),
	}
}
