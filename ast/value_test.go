package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiam/lscript/intern"
)

func TestEncode(t *testing.T) {
	table := intern.New()

	testCases := []struct {
		In  Value
		Out string
	}{
		{NewInteger(1), `1`},
		{NewInteger(-42), `-42`},
		{NewReal(3.14), `3.14`},
		{NewReal(2), `2.0`},
		{NewReal(1e10), `1e+10`},
		{NewReal(0.5), `0.5`},
		{String{Text: table.Intern("hello world", false)}, `"hello world"`},
		{String{Text: table.Intern(`say "hi" \ bye`, false)}, `"say \"hi\" \\ bye"`},
		{String{Text: table.Intern("two\nlines", false)}, "\"two\nlines\""},
		{Character{Char: 'a'}, `\a`},
		{Character{Char: '\n'}, `\\n`},
		{Character{Char: 0}, `\\0`},
		{Bool{Bool: true}, `true`},
		{Bool{Bool: false}, `false`},
		{Nil{}, `nil`},
		{Symbol{Name: table.Intern("foo", false)}, `foo`},
		{NewList(), `()`},
		{NewList(NewInteger(1), NewInteger(2), NewInteger(3)), `(1 2 3)`},
		{
			NewList(
				Symbol{Name: table.Intern("+", false)},
				NewList(NewInteger(1), NewReal(2.5)),
				NewList(),
			),
			`(+ (1 2.5) ())`,
		},
		{Error{Msg: table.Intern("boom", false)}, `ERROR: boom`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In, table)))
	}
}

func TestPrint(t *testing.T) {
	table := intern.New()

	v := NewList(
		Symbol{Name: table.Intern("f", false)},
		NewList(NewInteger(1), String{Text: table.Intern("x", false)}),
		Bool{Bool: true},
	)

	var buf bytes.Buffer
	Fprint(&buf, v, table)

	expected := "(list)[3]\n" +
		"    (symbol): f\n" +
		"    (list)[2]\n" +
		"        (number/integer): 1\n" +
		"        (string): \"x\"\n" +
		"    (bool): true\n"
	assert.Equal(t, expected, buf.String())
}

func TestRelease(t *testing.T) {
	table := intern.New()

	foo := table.Intern("foo", false)
	v := NewList(
		Symbol{Name: foo},
		NewList(Symbol{Name: table.Intern("foo", false)}, String{Text: table.Intern("bar", false)}),
		NewInteger(1),
	)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 2, table.RefCount(foo))

	Release(v, table)
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, v.Elems)
}

func TestEqual(t *testing.T) {
	table := intern.New()
	a := table.Intern("a", false)

	assert.True(t, Equal(NewList(Symbol{Name: a}, NewInteger(1)), NewList(Symbol{Name: a}, NewInteger(1))))
	assert.False(t, Equal(NewList(Symbol{Name: a}), NewList(Symbol{Name: a}, NewInteger(1))))
	assert.False(t, Equal(NewInteger(1), NewReal(1)))
	assert.False(t, Equal(NewList(), Nil{}))
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.True(t, Equal(Error{Msg: a}, Error{Msg: a, Err: assert.AnError}))
}

func TestTypes(t *testing.T) {
	assert.Equal(t, "number", NewInteger(1).Type().String())
	assert.Equal(t, "list", NewList().Type().String())
	assert.Equal(t, "real", NumberReal.String())
	assert.True(t, IsAtom(Nil{}))
	assert.False(t, IsAtom(NewList()))
	assert.Equal(t, 2.0, NewInteger(2).Float64())
}
