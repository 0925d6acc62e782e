package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lscript/ast"
	"github.com/xiam/lscript/intern"
	"github.com/xiam/lscript/lexer"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// QuoteSymbol is the symbol a quote token expands to: 'x reads as (quote x).
const QuoteSymbol = "quote"

// Options configures a Parser
type Options struct {
	// AutoCloseOnEOF closes every open list when the input ends instead of
	// failing.
	AutoCloseOnEOF bool

	// MaxDepth limits how deeply lists and quotes may nest.
	MaxDepth int
}

// Parser is a recursive-descent parser reading tokens from a lexer and
// building value trees. Texts of strings and symbols are stored in the
// parser's intern table.
type Parser struct {
	lx    *lexer.Lexer
	table *intern.Table
	opts  Options

	depth int
	done  bool
}

// New creates a parser that reads tokens from lx
func New(lx *lexer.Lexer, table *intern.Table) *Parser {
	return &Parser{
		lx:    lx,
		table: table,
		opts:  Options{MaxDepth: DefaultMaxDepth},
	}
}

// NewParser creates a parser over the given input
func NewParser(in []byte, table *intern.Table) *Parser {
	return New(lexer.New(string(in)), table)
}

// SetOptions replaces the parser options
func (p *Parser) SetOptions(opts Options) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p.opts = opts
}

// Next parses the next top-level expression. It returns false once the
// input is exhausted. An ast.Error is returned as a regular value, after
// which the parser is done.
func (p *Parser) Next() (ast.Value, bool) {
	if p.done {
		return nil, false
	}

	tok := p.lx.Next()
	if tok.Is(lexer.TokenEOF) {
		p.done = true
		return nil, false
	}

	v := p.ParseExpression(tok)
	if _, ok := v.(ast.Error); ok {
		p.done = true
	}
	return v, true
}

// Parse reads every remaining top-level expression. On failure the values
// read so far are released and the structured error is returned.
func (p *Parser) Parse() ([]ast.Value, error) {
	values := []ast.Value{}
	for {
		v, ok := p.Next()
		if !ok {
			return values, nil
		}
		if e, isErr := v.(ast.Error); isErr {
			for i := range values {
				ast.Release(values[i], p.table)
			}
			ast.Release(e, p.table)
			return nil, e.Err
		}
		values = append(values, v)
	}
}

// ParseExpression builds the value starting with tok, pulling more tokens
// from the lexer as needed.
func (p *Parser) ParseExpression(tok lexer.Token) ast.Value {
	switch tok.Type() {
	case lexer.TokenOpenList:
		return p.parseList(tok)
	case lexer.TokenQuote:
		return p.parseQuote(tok)
	case lexer.TokenSymbol,
		lexer.TokenInteger,
		lexer.TokenReal,
		lexer.TokenString,
		lexer.TokenBoolean,
		lexer.TokenCharacter:
		return p.parseAtom(tok)
	case lexer.TokenError:
		lexErr := tok.Err()
		return p.fail(&Error{
			Kind: PropagatedTokenizeError,
			Loc:  lexErr.Loc,
			Msg:  lexErr.Msg,
			Err:  lexErr,
		})
	case lexer.TokenEOF:
		return p.failf(UnexpectedEOF, tok, "unexpected end of input")
	case lexer.TokenCloseList:
		return p.failf(UnexpectedToken, tok, "unexpected ')'")
	}
	return p.failf(UnexpectedToken, tok, "unhandled token %v", tok.Type())
}

func (p *Parser) enter(tok lexer.Token) (ast.Value, bool) {
	if p.depth >= p.opts.MaxDepth {
		return p.failf(MaxDepthExceeded, tok, "nesting deeper than %d", p.opts.MaxDepth), false
	}
	p.depth++
	return nil, true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) parseList(open lexer.Token) ast.Value {
	if e, ok := p.enter(open); !ok {
		return e
	}
	defer p.leave()

	list := ast.NewList()
	for {
		tok := p.lx.Next()

		switch tok.Type() {
		case lexer.TokenCloseList:
			return list

		case lexer.TokenEOF:
			if p.opts.AutoCloseOnEOF {
				return list
			}
			ast.Release(list, p.table)
			return p.failf(UnexpectedEOF, tok, "unexpected end of input in list opened at %v", open.Range().Start)
		}

		v := p.ParseExpression(tok)
		if e, ok := v.(ast.Error); ok {
			ast.Release(list, p.table)
			return e
		}
		list.Push(v)
	}
}

func (p *Parser) parseQuote(quote lexer.Token) ast.Value {
	if e, ok := p.enter(quote); !ok {
		return e
	}
	defer p.leave()

	sym := ast.Symbol{Name: p.table.Intern(QuoteSymbol, true)}

	v := p.ParseExpression(p.lx.Next())
	if e, ok := v.(ast.Error); ok {
		p.table.Release(sym.Name)
		return e
	}
	return ast.NewList(sym, v)
}

func (p *Parser) parseAtom(tok lexer.Token) ast.Value {
	switch tok.Type() {
	case lexer.TokenInteger:
		return ast.NewInteger(tok.Int())
	case lexer.TokenReal:
		return ast.NewReal(tok.Real())
	case lexer.TokenString:
		return ast.String{Text: p.table.Intern(tok.Text(), false)}
	case lexer.TokenSymbol:
		return ast.Symbol{Name: p.table.Intern(tok.Text(), false)}
	case lexer.TokenBoolean:
		return ast.Bool{Bool: tok.Bool()}
	case lexer.TokenCharacter:
		return ast.Character{Char: tok.Char()}
	}
	return p.failf(UnexpectedToken, tok, "cannot convert %v token to a value", tok.Type())
}

func (p *Parser) failf(kind ErrorKind, tok lexer.Token, format string, args ...interface{}) ast.Value {
	return p.fail(&Error{
		Kind: kind,
		Loc:  tok.Range().Start,
		Msg:  fmt.Sprintf(format, args...),
	})
}

func (p *Parser) fail(err *Error) ast.Value {
	return ast.Error{
		Msg: p.table.Intern(err.Error(), false),
		Err: err,
	}
}

// Parse reads every expression in the given input. Strings and symbols are
// interned in table.
func Parse(in []byte, table *intern.Table) ([]ast.Value, error) {
	p := NewParser(in, table)
	return p.Parse()
}

// ErrorOf returns the structured error carried by an error value, or nil
// for any other value.
func ErrorOf(v ast.Value) *Error {
	e, ok := v.(ast.Error)
	if !ok {
		return nil
	}
	var perr *Error
	if errors.As(e.Err, &perr) {
		return perr
	}
	return nil
}
