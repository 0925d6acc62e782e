package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir string, name string, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer

	status := run(nil, strings.NewReader("(1 2 3)\n#t\n"), &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Equal(t, "(1 2 3)\ntrue\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunScriptError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	status := run([]string{"-snippet", "-"}, strings.NewReader("(a 1x)"), &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Empty(t, stdout.String())

	expected := "ERROR: tokenization error at 1:5: unexpected character 'x' in integer\n" +
		" 1 | (a 1x)\n" +
		"   |     ^\n"
	assert.Equal(t, expected, stderr.String())
}

func TestRunFilesInOrder(t *testing.T) {
	dir := t.TempDir()

	paths := []string{}
	for i, src := range []string{"(a)", "'b", "(c (d))", "1.5", "\"e\""} {
		name := string(rune('a'+i)) + ".lisp"
		paths = append(paths, writeScript(t, dir, name, src))
	}
	expected := "(a)\n(quote b)\n(c (d))\n1.5\n\"e\"\n"

	var stdout, stderr bytes.Buffer
	status := run(append([]string{"-j", "2"}, paths...), strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Equal(t, expected, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunTokens(t *testing.T) {
	var stdout, stderr bytes.Buffer

	status := run([]string{"-tokens"}, strings.NewReader("(x)"), &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Equal(t, "0: LPAREN @ 1:1-1:2\n1: SYMBOL x @ 1:2-1:3\n2: RPAREN @ 1:3-1:4\n3: EOF @ 1:4-1:4\n", stdout.String())
}

func TestRunAutoClose(t *testing.T) {
	var stdout, stderr bytes.Buffer

	status := run([]string{"-autoclose"}, strings.NewReader("(a (b"), &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Equal(t, "(a (b))\n", stdout.String())
}

func TestRunMaxDepth(t *testing.T) {
	var stdout, stderr bytes.Buffer

	status := run([]string{"-max-depth", "2"}, strings.NewReader("(((a)))"), &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "ERROR: parsing error at 1:3: nesting deeper than 2\n", stderr.String())
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer

	status := run([]string{"-v"}, strings.NewReader("(a) 'b"), &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Equal(t, "sexpr: -: 2 values, 1 live interned entries\n", stderr.String())
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer

	missing := filepath.Join(t.TempDir(), "missing.lisp")
	status := run([]string{missing}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), "sexpr: reading script:")
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	status := run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 2, status)
}
