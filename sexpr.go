// Package sexpr reads s-expression scripts into value trees.
//
// A Session owns the intern table shared by every value it reads. Sessions
// are independent of each other and may be used from different goroutines,
// but a single Session must not be used concurrently.
package sexpr

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xiam/lscript/ast"
	"github.com/xiam/lscript/intern"
	"github.com/xiam/lscript/lexer"
	"github.com/xiam/lscript/parser"
	"github.com/xiam/lscript/report"
)

// Options configures a Session
type Options struct {
	Parser parser.Options

	// Tree prints values as indented, type annotated trees.
	Tree bool

	// Snippets adds the offending source line under every reported error.
	Snippets bool
}

// Session reads scripts and keeps the interned text of the values it
// produces.
type Session struct {
	table *intern.Table
	opts  Options
}

// NewSession creates a session with an empty intern table
func NewSession(opts Options) *Session {
	return &Session{
		table: intern.New(),
		opts:  opts,
	}
}

// Table returns the intern table owned by the session
func (s *Session) Table() *intern.Table {
	return s.table
}

// Parser returns a parser over src configured with the session options.
func (s *Session) Parser(src []byte) *parser.Parser {
	p := parser.NewParser(src, s.table)
	p.SetOptions(s.opts.Parser)
	return p
}

// Read parses every top-level expression in src. If the input is malformed
// the last value is an ast.Error.
func (s *Session) Read(src []byte) []ast.Value {
	values := []ast.Value{}
	p := s.Parser(src)
	for {
		v, ok := p.Next()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

// Execute evaluates a value. Evaluation is not defined for this language
// yet, so the value is returned unchanged.
func (s *Session) Execute(v ast.Value) ast.Value {
	return v
}

// Encode returns the printed form of v
func (s *Session) Encode(v ast.Value) string {
	return string(ast.Encode(v, s.table))
}

// Release gives back the interned text held by v
func (s *Session) Release(v ast.Value) {
	ast.Release(v, s.table)
}

// Eval reads src one top-level expression at a time, executes it and prints
// the result to out. An error value is reported to errOut and ends the
// evaluation; it is not returned as an error. Eval returns the number of
// values printed and any error writing the output.
func (s *Session) Eval(src []byte, out io.Writer, errOut io.Writer) (int, error) {
	n := 0
	p := s.Parser(src)
	for {
		v, ok := p.Next()
		if !ok {
			return n, nil
		}

		if e, isErr := v.(ast.Error); isErr {
			err := report.Fprint(errOut, e, s.table, string(src), s.opts.Snippets)
			s.Release(e)
			return n, err
		}

		result := s.Execute(v)
		err := s.print(out, result)
		s.Release(result)
		if err != nil {
			return n, err
		}
		n++
	}
}

func (s *Session) print(w io.Writer, v ast.Value) error {
	if s.opts.Tree {
		ast.Fprint(w, v, s.table)
		return nil
	}
	_, err := fmt.Fprintf(w, "%s\n", ast.Encode(v, s.table))
	return err
}

// DumpTokens writes one line per token of src: its id, kind, payload and
// range. A tokenization error is reported to errOut and ends the dump.
// DumpTokens returns the number of tokens written.
func (s *Session) DumpTokens(src []byte, out io.Writer, errOut io.Writer) (int, error) {
	lx := lexer.New(string(src))
	for n := 0; ; n++ {
		tok := lx.Next()

		if tok.Is(lexer.TokenError) {
			e := ast.Error{
				Msg: s.table.Intern(tok.Err().Error(), false),
				Err: tok.Err(),
			}
			err := report.Fprint(errOut, e, s.table, string(src), s.opts.Snippets)
			s.Release(e)
			return n, err
		}

		if _, err := fmt.Fprintf(out, "%d: %s @ %v\n", tok.ID(), tokenTag(tok), tok.Range()); err != nil {
			return n, err
		}
		if tok.Is(lexer.TokenEOF) {
			return n + 1, nil
		}
	}
}

func tokenTag(tok lexer.Token) string {
	switch tok.Type() {
	case lexer.TokenString:
		return tok.Type().String() + " " + strconv.Quote(tok.Text())
	case lexer.TokenCharacter:
		return tok.Type().String() + " " + strconv.QuoteRune(tok.Char())
	}
	if p := tok.Payload(); p != "" {
		return tok.Type().String() + " " + p
	}
	return tok.Type().String()
}

// Parse reads every expression in the given input using a new session.
func Parse(in []byte) (*Session, []ast.Value, error) {
	s := NewSession(Options{})
	values, err := s.Parser(in).Parse()
	if err != nil {
		return nil, nil, err
	}
	return s, values, nil
}
