package ir

import "fmt"

type Type int

const (
	ValueType Type = iota
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ValueType:  "value",
		ArrayType:  "array",
		ObjectType: "object",
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
		"value":  ValueType,
		"array":  ArrayType,
		"object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{ValueType, ArrayType, ObjectType}
}
