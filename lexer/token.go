package lexer

import (
	"fmt"
	"strconv"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt TokenType
	id int

	text string
	i64  int64
	f64  float64
	b    bool
	char rune
	err  *Error
	rng  Range
}

// NewToken creates a lexical unit carrying no payload
func NewToken(tt TokenType, rng Range) Token {
	return Token{tt: tt, rng: rng}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// ID returns the position of the token in the stream, starting at zero.
func (t Token) ID() int {
	return t.id
}

// Range returns the span of input the token consumed
func (t Token) Range() Range {
	return t.rng
}

// Pos returns the line and column where the lexical unit starts
func (t Token) Pos() (int, int) {
	return t.rng.Start.Line, t.rng.Start.Column
}

// Text returns the decoded text of a symbol or string token
func (t Token) Text() string {
	return t.text
}

// Int returns the value of an integer token
func (t Token) Int() int64 {
	return t.i64
}

// Real returns the value of a real token
func (t Token) Real() float64 {
	return t.f64
}

// Bool returns the value of a boolean token
func (t Token) Bool() bool {
	return t.b
}

// Char returns the value of a character token
func (t Token) Char() rune {
	return t.char
}

// Err returns the failure carried by an error token
func (t Token) Err() *Error {
	return t.err
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Payload returns a printable form of the token value, or an empty string for
// tokens without one.
func (t Token) Payload() string {
	switch t.tt {
	case TokenSymbol, TokenString:
		return t.text
	case TokenInteger:
		return strconv.FormatInt(t.i64, 10)
	case TokenReal:
		return strconv.FormatFloat(t.f64, 'g', -1, 64)
	case TokenBoolean:
		if t.b {
			return "#t"
		}
		return "#f"
	case TokenCharacter:
		return string(t.char)
	case TokenError:
		return t.err.Msg
	}
	return ""
}

func (t Token) String() string {
	if p := t.Payload(); p != "" {
		return fmt.Sprintf("%v(%q) @ %v", t.tt, p, t.rng)
	}
	return fmt.Sprintf("%v @ %v", t.tt, t.rng)
}
