package ast

// ValueType represents the variant of a Value
type ValueType uint8

// Value types
const (
	ValueTypeError ValueType = iota
	ValueTypeNumber
	ValueTypeString
	ValueTypeCharacter
	ValueTypeBool
	ValueTypeNil
	ValueTypeSymbol
	ValueTypeList
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return ""
}

var valueTypeName = map[ValueType]string{
	ValueTypeError:     "error",
	ValueTypeNumber:    "number",
	ValueTypeString:    "string",
	ValueTypeCharacter: "character",
	ValueTypeBool:      "bool",
	ValueTypeNil:       "nil",
	ValueTypeSymbol:    "symbol",
	ValueTypeList:      "list",
}

// NumberKind tells whether a Number holds an integer or a real
type NumberKind uint8

// Number kinds
const (
	NumberInteger NumberKind = iota + 1
	NumberReal
)

func (k NumberKind) String() string {
	switch k {
	case NumberInteger:
		return "integer"
	case NumberReal:
		return "real"
	}
	return ""
}
