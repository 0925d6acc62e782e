package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lscript/ast"
	"github.com/xiam/lscript/intern"
	"github.com/xiam/lscript/lexer"
	"github.com/xiam/lscript/parser"
)

func TestSnippet(t *testing.T) {
	testCases := []struct {
		Src string
		Loc lexer.Location
		Out string
	}{
		{
			"(1 2x)",
			lexer.Location{Line: 1, Column: 5, Offset: 4},
			" 1 | (1 2x)\n" +
				"   |     ^\n",
		},
		{
			"(a\n\t(b 2x))",
			lexer.Location{Line: 2, Column: 6, Offset: 8},
			" 2 | " + "    (b 2x))\n" +
				"   | " + "        ^\n",
		},
		{
			"(\"世界\" 2x)",
			lexer.Location{Line: 1, Column: 7, Offset: 11},
			" 1 | (\"世界\" 2x)\n" +
				"   |          ^\n",
		},
		{
			"\"abc",
			lexer.Location{Line: 1, Column: 5, Offset: 4},
			" 1 | \"abc\n" +
				"   |     ^\n",
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, Snippet(testCases[i].Src, testCases[i].Loc))
	}

	assert.Equal(t, "", Snippet("abc", lexer.Location{Offset: 10}))
}

func TestFprint(t *testing.T) {
	src := "(ok)\n(1 2x)"
	table := intern.New()

	p := parser.NewParser([]byte(src), table)
	_, ok := p.Next()
	require.True(t, ok)

	v, ok := p.Next()
	require.True(t, ok)
	e, isErr := v.(ast.Error)
	require.True(t, isErr)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, e, table, src, false))
	assert.Equal(t, "ERROR: tokenization error at 2:5: unexpected character 'x' in integer\n", buf.String())

	buf.Reset()
	require.NoError(t, Fprint(&buf, e, table, src, true))
	assert.Equal(t,
		"ERROR: tokenization error at 2:5: unexpected character 'x' in integer\n"+
			" 2 | (1 2x)\n"+
			"   |     ^\n",
		buf.String())
}

func TestLocate(t *testing.T) {
	_, err := lexer.Tokenize([]byte("#x"))
	loc, ok := Locate(err)
	require.True(t, ok)
	assert.Equal(t, "1:2", loc.String())

	_, ok = Locate(assert.AnError)
	assert.False(t, ok)
}
