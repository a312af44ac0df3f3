package dom

import "fmt"

type Type int

const (
	InvalidType Type = iota
	NullType
	BoolType
	IntegerType
	FloatType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		InvalidType: "Invalid",
		NullType:    "Null",
		BoolType:    "Bool",
		IntegerType: "Integer",
		FloatType:   "Float",
		StringType:  "String",
		ArrayType:   "Array",
		ObjectType:  "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Invalid": InvalidType,
		"Null":    NullType,
		"Bool":    BoolType,
		"Integer": IntegerType,
		"Float":   FloatType,
		"String":  StringType,
		"Array":   ArrayType,
		"Object":  ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		InvalidType,
		NullType,
		BoolType,
		IntegerType,
		FloatType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}
