package ast

import (
	"github.com/xiam/lscript/intern"
)

// Value is a node of a parsed tree. The set of variants is closed: Error,
// Number, String, Character, Bool, Nil, Symbol and List.
type Value interface {
	Type() ValueType
	value()
}

// Error is a failure flowing through the same channel as successful values.
// Msg is the interned message; Err, when set, is the structured error that
// produced it.
type Error struct {
	Msg intern.ID
	Err error
}

// Number is an integer or a real number
type Number struct {
	Kind NumberKind
	Int  int64
	Real float64
}

// String is an interned string literal
type String struct {
	Text intern.ID
}

// Character is a character literal
type Character struct {
	Char rune
}

// Bool is a boolean literal
type Bool struct {
	Bool bool
}

// Nil is the empty value
type Nil struct{}

// Symbol is an interned identifier
type Symbol struct {
	Name intern.ID
}

// List is an ordered sequence of values. A list owns its elements.
type List struct {
	Elems []Value
}

func (Error) Type() ValueType     { return ValueTypeError }
func (Number) Type() ValueType    { return ValueTypeNumber }
func (String) Type() ValueType    { return ValueTypeString }
func (Character) Type() ValueType { return ValueTypeCharacter }
func (Bool) Type() ValueType      { return ValueTypeBool }
func (Nil) Type() ValueType       { return ValueTypeNil }
func (Symbol) Type() ValueType    { return ValueTypeSymbol }
func (*List) Type() ValueType     { return ValueTypeList }

func (Error) value()     {}
func (Number) value()    {}
func (String) value()    {}
func (Character) value() {}
func (Bool) value()      {}
func (Nil) value()       {}
func (Symbol) value()    {}
func (*List) value()     {}

// NewInteger creates an integer number
func NewInteger(v int64) Number {
	return Number{Kind: NumberInteger, Int: v}
}

// NewReal creates a real number
func NewReal(v float64) Number {
	return Number{Kind: NumberReal, Real: v}
}

// Float64 returns the number as a float64, whatever its kind
func (n Number) Float64() float64 {
	if n.Kind == NumberInteger {
		return float64(n.Int)
	}
	return n.Real
}

// NewList creates a list holding the given elements
func NewList(elems ...Value) *List {
	if elems == nil {
		elems = []Value{}
	}
	return &List{Elems: elems}
}

// Push appends a child value to the list
func (l *List) Push(v Value) {
	l.Elems = append(l.Elems, v)
}

// Len returns the number of elements in the list
func (l *List) Len() int {
	return len(l.Elems)
}

// IsAtom returns true for every value that is not a list
func IsAtom(v Value) bool {
	_, ok := v.(*List)
	return !ok
}

// Release gives back every interned reference held by v and its children.
// The value must not be used afterwards.
func Release(v Value, t *intern.Table) {
	switch v := v.(type) {
	case Error:
		t.Release(v.Msg)
	case String:
		t.Release(v.Text)
	case Symbol:
		t.Release(v.Name)
	case *List:
		for i := range v.Elems {
			Release(v.Elems[i], t)
		}
		v.Elems = nil
	}
}

// Equal reports whether two trees built against the same table are
// structurally identical. Errors compare by message only.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Error:
		b, ok := b.(Error)
		return ok && a.Msg == b.Msg
	case *List:
		b, ok := b.(*List)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	case Number, String, Character, Bool, Nil, Symbol:
		return a == b
	}
	return false
}
