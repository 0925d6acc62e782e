package lexer

import (
	"fmt"
)

// Location is a point in the input. Line and Column are 1-based, Offset is a
// 0-based byte offset.
type Location struct {
	Line   int
	Column int
	Offset int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Range is the half-open span [Start, End) a token occupies.
type Range struct {
	Start Location
	End   Location
}

func (r Range) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End.Offset - r.Start.Offset
}

// tracker keeps line, column and offset in sync with the runes consumed.
type tracker struct {
	loc Location
}

func newTracker() tracker {
	return tracker{loc: Location{Line: 1, Column: 1}}
}

func (t *tracker) advance(r rune, size int) {
	t.loc.Offset += size
	if r == '\n' {
		t.loc.Line++
		t.loc.Column = 1
		return
	}
	t.loc.Column++
}
