package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

const eof = rune(-1)

type lexState func(*Lexer) lexState

// New initializes a Lexer over the given input
func New(in string) *Lexer {
	return &Lexer{
		in:  in,
		pos: newTracker(),
		buf: []rune{},
	}
}

// Lexer represents a lexical analyzer. It is a single pass cursor over the
// input: every call to Next produces exactly one token and the cursor never
// moves backwards.
type Lexer struct {
	in  string
	pos tracker

	start Location
	buf   []rune

	tok  Token
	ids  int
	done bool
}

// Next scans and returns the next token. Once an EOF or error token has been
// returned, every subsequent call returns that same token.
func (lx *Lexer) Next() Token {
	if lx.done {
		return lx.tok
	}

	for state := lexStart; state != nil; {
		state = state(lx)
	}

	if lx.tok.Is(TokenEOF) || lx.tok.Is(TokenError) {
		lx.done = true
	}
	return lx.tok
}

// Location returns the current position of the cursor.
func (lx *Lexer) Location() Location {
	return lx.pos.loc
}

func (lx *Lexer) peek() rune {
	return lx.peekAt(0)
}

func (lx *Lexer) peekAt(n int) rune {
	off := lx.pos.loc.Offset
	for i := 0; ; i++ {
		if off >= len(lx.in) {
			return eof
		}
		r, size := utf8.DecodeRuneInString(lx.in[off:])
		if i == n {
			return r
		}
		off += size
	}
}

func (lx *Lexer) next() rune {
	if lx.pos.loc.Offset >= len(lx.in) {
		return eof
	}
	r, size := utf8.DecodeRuneInString(lx.in[lx.pos.loc.Offset:])
	lx.pos.advance(r, size)
	return r
}

// lexeme returns the raw input consumed since the token started.
func (lx *Lexer) lexeme() string {
	return lx.in[lx.start.Offset:lx.pos.loc.Offset]
}

func (lx *Lexer) emit(tok Token) {
	tok.id = lx.ids
	tok.rng = Range{Start: lx.start, End: lx.pos.loc}

	lx.ids++
	lx.tok = tok
}

func (lx *Lexer) errorf(kind ErrorKind, r rune, loc Location, format string, args ...interface{}) lexState {
	lx.tok = Token{
		tt: TokenError,
		id: lx.ids,
		err: &Error{
			Kind: kind,
			Char: r,
			Loc:  loc,
			Msg:  fmt.Sprintf(format, args...),
		},
		rng: Range{Start: loc, End: loc},
	}
	lx.ids++
	return nil
}

// unexpected reports r, found where a literal of the given kind should have
// continued or ended.
func (lx *Lexer) unexpected(r rune, what string) lexState {
	if r == eof {
		return lx.errorf(UnexpectedEOF, r, lx.pos.loc, "unexpected end of input in %s", what)
	}
	return lx.errorf(UnexpectedChar, r, lx.pos.loc, "unexpected character %q in %s", r, what)
}

// atBoundary reports whether the literal just scanned is followed by
// whitespace, a closing parenthesis or the end of input, recording an error
// token when it is not.
func (lx *Lexer) atBoundary(what string) bool {
	if r := lx.peek(); !isBoundary(r) {
		lx.unexpected(r, what)
		return false
	}
	return true
}

// skipBlank consumes whitespace and line comments (";;" and "--").
func (lx *Lexer) skipBlank() {
	for {
		r := lx.peek()
		switch {
		case isWhitespace(r):
			lx.next()
		case (r == ';' || r == '-') && lx.peekAt(1) == r:
			for r := lx.peek(); r != '\n' && r != eof; r = lx.peek() {
				lx.next()
			}
		default:
			return
		}
	}
}

func lexStart(lx *Lexer) lexState {
	lx.skipBlank()
	lx.start = lx.pos.loc

	r := lx.peek()
	switch {
	case r == eof:
		return lexEmit(TokenEOF)
	case r == '(':
		lx.next()
		return lexEmit(TokenOpenList)
	case r == ')':
		lx.next()
		return lexEmit(TokenCloseList)
	case r == '\'':
		lx.next()
		return lexEmit(TokenQuote)
	case r == '"':
		lx.next()
		return lexString
	case r == '#':
		lx.next()
		return lexBoolean
	case r == '\\':
		lx.next()
		return lexCharacter
	}

	if rx, ok := radixes[lx.peekAt(1)]; ok && r == '0' {
		lx.next()
		lx.next()
		return lexRadixInteger(rx)
	}

	switch next := lx.peekAt(1); {
	case isDigit(r),
		isSign(r) && isDigit(next),
		r == '.' && isDigit(next):
		return lexInteger
	case isSymbol(r):
		return lexSymbol
	}

	return lx.errorf(UnexpectedChar, r, lx.pos.loc, "unexpected character %q", r)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(Token{tt: tt})
		return nil
	}
}

func lexSymbol(lx *Lexer) lexState {
	for isSymbol(lx.peek()) {
		lx.next()
	}
	if !lx.atBoundary("symbol") {
		return nil
	}
	lx.emit(Token{tt: TokenSymbol, text: lx.lexeme()})
	return nil
}

func lexInteger(lx *Lexer) lexState {
	if isSign(lx.peek()) {
		lx.next()
	}
	for isDigit(lx.peek()) {
		lx.next()
	}

	switch r := lx.peek(); {
	case r == '.':
		lx.next()
		return lexFraction
	case isExponent(r):
		return lexExponent
	}

	return lexFinish(TokenInteger, "integer")
}

func lexFraction(lx *Lexer) lexState {
	for isDigit(lx.peek()) {
		lx.next()
	}
	if isExponent(lx.peek()) {
		return lexExponent
	}
	return lexFinish(TokenReal, "real")
}

func lexExponent(lx *Lexer) lexState {
	lx.next()
	if isSign(lx.peek()) {
		lx.next()
	}
	if r := lx.peek(); !isDigit(r) {
		return lx.unexpected(r, "real exponent")
	}
	for isDigit(lx.peek()) {
		lx.next()
	}
	return lexFinish(TokenReal, "real")
}

// lexFinish converts the decimal lexeme into an integer or real token.
func lexFinish(tt TokenType, what string) lexState {
	return func(lx *Lexer) lexState {
		if !lx.atBoundary(what) {
			return nil
		}

		text := lx.lexeme()
		if tt == TokenReal {
			f64, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return lx.numberError(err, text, what)
			}
			lx.emit(Token{tt: TokenReal, f64: f64})
			return nil
		}

		i64, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return lx.numberError(err, text, what)
		}
		lx.emit(Token{tt: TokenInteger, i64: i64})
		return nil
	}
}

func lexRadixInteger(rx radix) lexState {
	return func(lx *Lexer) lexState {
		from := lx.pos.loc.Offset
		if r := lx.peek(); !rx.digit(r) {
			return lx.unexpected(r, rx.name)
		}
		for rx.digit(lx.peek()) {
			lx.next()
		}
		if !lx.atBoundary(rx.name) {
			return nil
		}

		i64, err := strconv.ParseInt(lx.in[from:lx.pos.loc.Offset], rx.base, 64)
		if err != nil {
			return lx.numberError(err, lx.lexeme(), rx.name)
		}
		lx.emit(Token{tt: TokenInteger, i64: i64})
		return nil
	}
}

func (lx *Lexer) numberError(err error, text string, what string) lexState {
	if errors.Is(err, strconv.ErrRange) {
		return lx.errorf(OutOfRangeNumber, eof, lx.start, "%s literal out of range: %s", what, text)
	}
	return lx.errorf(UnexpectedChar, eof, lx.start, "malformed %s literal: %s", what, text)
}

func lexString(lx *Lexer) lexState {
	lx.buf = lx.buf[:0]
	for {
		switch r := lx.next(); r {
		case eof:
			return lx.errorf(UnterminatedLiteral, eof, lx.pos.loc, "unterminated string starting at %v", lx.start)
		case '"':
			lx.emit(Token{tt: TokenString, text: string(lx.buf)})
			return nil
		case '\\':
			escaped := lx.next()
			if escaped == eof {
				return lx.errorf(UnterminatedLiteral, eof, lx.pos.loc, "unterminated string starting at %v", lx.start)
			}
			lx.buf = append(lx.buf, escaped)
		default:
			lx.buf = append(lx.buf, r)
		}
	}
}

func lexBoolean(lx *Lexer) lexState {
	var b bool
	switch r := lx.peek(); r {
	case 't':
		b = true
	case 'f':
		b = false
	default:
		return lx.unexpected(r, "boolean")
	}
	lx.next()

	if !lx.atBoundary("boolean") {
		return nil
	}
	lx.emit(Token{tt: TokenBoolean, b: b})
	return nil
}

func lexCharacter(lx *Lexer) lexState {
	r := lx.peek()
	if r == eof {
		return lx.unexpected(r, "character literal")
	}
	lx.next()

	if r == '\\' && !isBoundary(lx.peek()) {
		e := lx.peek()
		escaped, ok := characterEscapes[e]
		if !ok {
			return lx.errorf(UnexpectedChar, e, lx.pos.loc, "unknown character escape %q", `\`+string(e))
		}
		lx.next()
		r = escaped
	}

	if !lx.atBoundary("character literal") {
		return nil
	}
	lx.emit(Token{tt: TokenCharacter, char: r})
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it, up
// to and including EOF. On malformed input it returns the tokens scanned so
// far together with the tokenization error.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(string(in))
	for {
		tok := lx.Next()
		if tok.Is(TokenError) {
			return tokens, tok.Err()
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
