package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar      = errors.New("unexpected character")
	ErrUnterminatedLiteral = errors.New("unterminated literal")
	ErrOutOfRange          = errors.New("number out of range")
	ErrUnexpectedEOF       = errors.New("unexpected EOF")
)

// ErrorKind classifies tokenization failures.
type ErrorKind uint8

const (
	UnexpectedChar ErrorKind = iota
	UnterminatedLiteral
	OutOfRangeNumber
	UnexpectedEOF
)

var errorKinds = map[ErrorKind]error{
	UnexpectedChar:      ErrUnexpectedChar,
	UnterminatedLiteral: ErrUnterminatedLiteral,
	OutOfRangeNumber:    ErrOutOfRange,
	UnexpectedEOF:       ErrUnexpectedEOF,
}

func (k ErrorKind) String() string {
	return errorKinds[k].Error()
}

// Error is a tokenization failure. Loc points at the offending character, or
// at the end of input.
type Error struct {
	Kind ErrorKind
	Char rune
	Loc  Location
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("tokenization error at %v: %s", e.Loc, e.Msg)
}

// Unwrap returns the sentinel error matching the error kind.
func (e *Error) Unwrap() error {
	return errorKinds[e.Kind]
}

// Location returns where the error was detected.
func (e *Error) Location() Location {
	return e.Loc
}
