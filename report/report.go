// Package report renders error values for people: an "ERROR:" line and,
// when the error knows its location, the offending source line with a caret
// under the column.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/xiam/lscript/ast"
	"github.com/xiam/lscript/intern"
	"github.com/xiam/lscript/lexer"
)

const tabWidth = 4

// Locator is implemented by errors that know where in the input they were
// detected.
type Locator interface {
	Location() lexer.Location
}

// Message formats the diagnostic line for an error message.
func Message(msg string) string {
	return "ERROR: " + msg
}

// Locate returns the location carried by err, if any.
func Locate(err error) (lexer.Location, bool) {
	var l Locator
	if errors.As(err, &l) {
		return l.Location(), true
	}
	return lexer.Location{}, false
}

// Snippet renders the line of src holding loc followed by a caret line.
func Snippet(src string, loc lexer.Location) string {
	if loc.Offset < 0 || loc.Offset > len(src) {
		return ""
	}

	start := strings.LastIndexByte(src[:loc.Offset], '\n') + 1
	end := len(src)
	if i := strings.IndexByte(src[loc.Offset:], '\n'); i >= 0 {
		end = loc.Offset + i
	}

	line := strings.TrimSuffix(src[start:end], "\r")
	width := uniseg.StringWidth(expandTabs(src[start:loc.Offset]))

	gutter := strconv.Itoa(loc.Line)
	pad := strings.Repeat(" ", len(gutter))

	var b strings.Builder
	fmt.Fprintf(&b, " %s | %s\n", gutter, expandTabs(line))
	fmt.Fprintf(&b, " %s | %s^\n", pad, strings.Repeat(" ", width))
	return b.String()
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// Fprint writes the diagnostic for an error value to w. When withSnippet is
// set and the error is located, the source line and a caret follow.
func Fprint(w io.Writer, e ast.Error, table *intern.Table, src string, withSnippet bool) error {
	if _, err := fmt.Fprintln(w, Message(table.Value(e.Msg))); err != nil {
		return err
	}
	if !withSnippet {
		return nil
	}
	loc, ok := Locate(e.Err)
	if !ok {
		return nil
	}
	_, err := io.WriteString(w, Snippet(src, loc))
	return err
}
