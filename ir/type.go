package ir

import "fmt"

type Type int

const (
	ScalarType Type = iota
	VectorType
	ListType
	MapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType: "Scalar",
		VectorType: "Vector",
		ListType:   "List",
		MapType:    "Map",
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
		"Scalar": ScalarType,
		"Vector": VectorType,
		"List":   ListType,
		"Map":    MapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ScalarType,
		VectorType,
		ListType,
		MapType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ScalarType, VectorType:
		return true
	default:
		return false
	}
}
