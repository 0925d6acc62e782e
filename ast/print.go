package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xiam/lscript/intern"
)

var characterNames = map[rune]string{
	'\n': `\\n`,
	'\t': `\\t`,
	'\r': `\\r`,
	0:    `\\0`,
}

// Print displays a human-readable representation of a value tree
func Print(v Value, t *intern.Table) {
	Fprint(os.Stdout, v, t)
}

// Fprint writes an indented, type annotated representation of a value tree
func Fprint(w io.Writer, v Value, t *intern.Table) {
	printLevel(w, v, t, 0)
}

func printLevel(w io.Writer, v Value, t *intern.Table, level int) {
	indent := strings.Repeat("    ", level)
	if v == nil {
		fmt.Fprintf(w, "%snil\n", indent)
		return
	}

	switch v := v.(type) {
	case *List:
		fmt.Fprintf(w, "%s(%s)[%d]\n", indent, v.Type(), v.Len())
		for i := range v.Elems {
			printLevel(w, v.Elems[i], t, level+1)
		}
	case Number:
		fmt.Fprintf(w, "%s(%s/%s): %s\n", indent, v.Type(), v.Kind, Encode(v, t))
	default:
		fmt.Fprintf(w, "%s(%s): %s\n", indent, v.Type(), Encode(v, t))
	}
}

// Encode transforms a value into its textual representation
func Encode(v Value, t *intern.Table) []byte {
	var b strings.Builder
	encodeValue(&b, v, t)
	return []byte(b.String())
}

func encodeValue(b *strings.Builder, v Value, t *intern.Table) {
	switch v := v.(type) {
	case nil:
		b.WriteString("nil")
	case Error:
		b.WriteString("ERROR: ")
		b.WriteString(t.Value(v.Msg))
	case Number:
		b.WriteString(encodeNumber(v))
	case String:
		b.WriteString(encodeString(t.Value(v.Text)))
	case Character:
		if name, ok := characterNames[v.Char]; ok {
			b.WriteString(name)
			return
		}
		b.WriteByte('\\')
		b.WriteRune(v.Char)
	case Bool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case Nil:
		b.WriteString("nil")
	case Symbol:
		b.WriteString(t.Value(v.Name))
	case *List:
		b.WriteByte('(')
		for i := range v.Elems {
			if i > 0 {
				b.WriteByte(' ')
			}
			encodeValue(b, v.Elems[i], t)
		}
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func encodeNumber(n Number) string {
	if n.Kind == NumberInteger {
		return strconv.FormatInt(n.Int, 10)
	}
	s := strconv.FormatFloat(n.Real, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// encodeString quotes s so that reading it back yields the same text.
func encodeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
