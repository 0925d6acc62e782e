package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lscript/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTokenize        = errors.New("tokenization failed")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
)

// ErrorKind classifies parsing failures
type ErrorKind uint8

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEOF
	PropagatedTokenizeError
	MaxDepthExceeded
)

var errorKinds = map[ErrorKind]error{
	UnexpectedToken:         ErrUnexpectedToken,
	UnexpectedEOF:           ErrUnexpectedEOF,
	PropagatedTokenizeError: ErrTokenize,
	MaxDepthExceeded:        ErrMaxDepth,
}

func (k ErrorKind) String() string {
	return errorKinds[k].Error()
}

// Error is a parsing failure. Tokenization failures are propagated with Kind
// PropagatedTokenizeError and the *lexer.Error in Err.
type Error struct {
	Kind ErrorKind
	Loc  lexer.Location
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == PropagatedTokenizeError && e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("parsing error at %v: %s", e.Loc, e.Msg)
}

// Unwrap returns the sentinel matching the error kind and, if present, the
// underlying tokenization error.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{errorKinds[e.Kind], e.Err}
	}
	return []error{errorKinds[e.Kind]}
}

// Location returns where the error was detected.
func (e *Error) Location() lexer.Location {
	return e.Loc
}
