package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenQuote               // Single quote: "'"
	TokenSymbol              // Letters and _+-*/=<>?!
	TokenInteger             // Decimal, hex (0x), octal (0o) or binary (0b) integer
	TokenReal                // Decimal with fraction or exponent
	TokenString              // Double quoted string
	TokenBoolean             // #t or #f
	TokenCharacter           // \c or \\n
	TokenEOF                 // End of file
	TokenError               // Malformed input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:   "INVALID",
	TokenOpenList:  "LPAREN",
	TokenCloseList: "RPAREN",
	TokenQuote:     "QUOTE",
	TokenSymbol:    "SYMBOL",
	TokenInteger:   "INTEGER",
	TokenReal:      "REAL",
	TokenString:    "STRING",
	TokenBoolean:   "BOOLEAN",
	TokenCharacter: "CHARACTER",
	TokenEOF:       "EOF",
	TokenError:     "ERROR",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

type runeClass uint8

const (
	classWhitespace runeClass = iota
	classSymbol
	classDecimal
	classHex
	classOctal
	classBinary
	classSign
	classExponent
)

var classValues = map[runeClass][]rune{
	classWhitespace: []rune(" \t\n\r\f\v"),
	classSymbol:     []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_+-*/=<>?!"),
	classDecimal:    []rune("0123456789"),
	classHex:        []rune("0123456789abcdefABCDEF"),
	classOctal:      []rune("01234567"),
	classBinary:     []rune("01"),
	classSign:       []rune("+-"),
	classExponent:   []rune("eE"),
}

func isClass(c runeClass) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range classValues[c] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isWhitespace = isClass(classWhitespace)
	isSymbol     = isClass(classSymbol)
	isDigit      = isClass(classDecimal)
	isHexDigit   = isClass(classHex)
	isOctalDigit = isClass(classOctal)
	isBinDigit   = isClass(classBinary)
	isSign       = isClass(classSign)
	isExponent   = isClass(classExponent)
)

// isBoundary reports whether r may follow a literal. eof is passed as -1.
func isBoundary(r rune) bool {
	return r == eof || r == ')' || isWhitespace(r)
}

// characterEscapes maps the rune after `\\` in a character literal to the
// character it denotes.
var characterEscapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'(':  '(',
	')':  ')',
}

// radix describes a prefixed integer literal.
type radix struct {
	name  string
	base  int
	digit func(rune) bool
}

var radixes = map[rune]radix{
	'x': {name: "hex integer", base: 16, digit: isHexDigit},
	'o': {name: "octal integer", base: 8, digit: isOctalDigit},
	'b': {name: "binary integer", base: 2, digit: isBinDigit},
}
