package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned for malformed expressions.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownIdentifier is returned when an expression names anything outside
	// the fixed vocabulary.
	ErrUnknownIdentifier = errors.New("expr: unknown identifier")

	// ErrDomain is returned for arithmetic domain errors and non-finite results.
	ErrDomain = errors.New("expr: domain error")
)

// Error is the single evaluation error kind surfaced to callers.
type Error struct {
	Source string
	Pos    int // byte offset, -1 when not tied to a position
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Err, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func syntaxError(src string, pos int, format string, args ...interface{}) *Error {
	return &Error{Source: src, Pos: pos, Msg: fmt.Sprintf(format, args...), Err: ErrSyntax}
}

func domainError(src string, format string, args ...interface{}) *Error {
	return &Error{Source: src, Pos: -1, Msg: fmt.Sprintf(format, args...), Err: ErrDomain}
}
