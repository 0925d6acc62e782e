// Package intern provides a reference counted string interning table.
//
// A Table stores every distinct text exactly once. Values produced by the
// parser hold an [ID] into the table instead of their own copy of the text.
package intern

import (
	"fmt"
)

// ID is the index of an interned string in the [Table] that created it.
type ID int

func (id ID) String() string {
	return fmt.Sprintf("intern.ID(%d)", int(id))
}

type entry struct {
	text    string
	refs    int
	eternal bool
	live    bool
}

// Table is an interning table. Lookups scan the entries in order, which is
// fine for the table sizes a single script produces.
//
// A Table is owned by one session and is not safe for concurrent use.
type Table struct {
	entries []entry
	free    []ID
}

// New returns an empty table
func New() *Table {
	return &Table{}
}

// Intern returns the ID for s, adding it to the table if needed. Interning
// text that is already present increments its reference count. Eternal
// entries are never freed, whatever their reference count.
func (t *Table) Intern(s string, eternal bool) ID {
	for i := range t.entries {
		e := &t.entries[i]
		if e.live && e.text == s {
			e.refs++
			e.eternal = e.eternal || eternal
			return ID(i)
		}
	}

	e := entry{text: s, refs: 1, eternal: eternal, live: true}
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.entries[id] = e
		return id
	}

	t.entries = append(t.entries, e)
	return ID(len(t.entries) - 1)
}

// Lookup returns the text stored under id. The second return value is false
// if id is unknown or has been released.
func (t *Table) Lookup(id ID) (string, bool) {
	if id < 0 || int(id) >= len(t.entries) || !t.entries[id].live {
		return "", false
	}
	return t.entries[id].text, true
}

// Value returns the text stored under id, or an empty string.
func (t *Table) Value(id ID) string {
	s, _ := t.Lookup(id)
	return s
}

// RefCount returns the number of outstanding references to id.
func (t *Table) RefCount(id ID) int {
	if _, ok := t.Lookup(id); !ok {
		return 0
	}
	return t.entries[id].refs
}

// IsEternal reports whether id was interned as an eternal entry.
func (t *Table) IsEternal(id ID) bool {
	if _, ok := t.Lookup(id); !ok {
		return false
	}
	return t.entries[id].eternal
}

// Release drops one reference to id. Entries that are not eternal are freed
// once their last reference is gone, and their slot is reused by a later
// call to Intern.
func (t *Table) Release(id ID) {
	if _, ok := t.Lookup(id); !ok {
		return
	}

	e := &t.entries[id]
	if e.refs > 0 {
		e.refs--
	}
	if e.refs == 0 && !e.eternal {
		*e = entry{}
		t.free = append(t.free, id)
	}
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	return len(t.entries) - len(t.free)
}
