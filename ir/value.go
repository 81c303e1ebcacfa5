package ir

import (
	"strconv"
	"strings"
)

// Value is one extracted dictionary value. Exactly one representation
// is populated, selected by Type:
//
//   - ScalarType: Scalar holds the raw text of the value.
//   - VectorType: Vector holds three numeric components.
//   - ListType: Elems holds the ordered elements.
//   - MapType: Fields and Values are parallel slices in declaration
//     order. Fields are unique; repeated sibling keys are collapsed by
//     the extractor into one field holding a List of Maps.
type Value struct {
	Type   Type
	Scalar string
	Vector [3]float64
	Elems  []*Value
	Fields []string
	Values []*Value
}

func Scalar(s string) *Value {
	return &Value{Type: ScalarType, Scalar: s}
}

func Vector(x, y, z float64) *Value {
	return &Value{Type: VectorType, Vector: [3]float64{x, y, z}}
}

func List(elems ...*Value) *Value {
	return &Value{Type: ListType, Elems: elems}
}

func Map() *Value {
	return &Value{Type: MapType}
}

// SetField appends or replaces the field f.
func (v *Value) SetField(f string, fv *Value) {
	for i := range v.Fields {
		if v.Fields[i] == f {
			v.Values[i] = fv
			return
		}
	}
	v.Fields = append(v.Fields, f)
	v.Values = append(v.Values, fv)
}

// Field returns the value of field f, or nil.
func (v *Value) Field(f string) *Value {
	if v == nil || v.Type != MapType {
		return nil
	}
	for i := range v.Fields {
		if v.Fields[i] == f {
			return v.Values[i]
		}
	}
	return nil
}

// Resolve walks a route from v. A missing segment or an out of range
// index yields nil. On a List, a plain key segment resolves against
// the first Map element that has the field, matching first-occurrence
// reads for repeated keys.
func (v *Value) Resolve(route string) *Value {
	if route == "" {
		return v
	}
	segs, err := ParseRoute(route)
	if err != nil {
		return nil
	}
	cur := v
	for _, seg := range segs {
		if cur == nil {
			return nil
		}
		if seg.Key != "" {
			switch cur.Type {
			case MapType:
				cur = cur.Field(seg.Key)
			case ListType:
				var found *Value
				for _, e := range cur.Elems {
					if f := e.Field(seg.Key); f != nil {
						found = f
						break
					}
				}
				cur = found
			default:
				return nil
			}
		}
		if cur == nil {
			return nil
		}
		if seg.Index >= 0 {
			if cur.Type != ListType || seg.Index >= len(cur.Elems) {
				return nil
			}
			cur = cur.Elems[seg.Index]
		}
	}
	return cur
}

// Keys returns the ordered field names of a Map value.
func (v *Value) Keys() []string {
	if v == nil || v.Type != MapType {
		return nil
	}
	keys := make([]string, len(v.Fields))
	copy(keys, v.Fields)
	return keys
}

// Interface converts v to plain Go values: string, [3]float64 becomes
// []float64, lists become []any and maps map[string]any. Order is
// lost for maps; callers needing order walk Fields directly.
func (v *Value) Interface() any {
	switch v.Type {
	case ScalarType:
		return v.Scalar
	case VectorType:
		return []float64{v.Vector[0], v.Vector[1], v.Vector[2]}
	case ListType:
		out := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			out[i] = e.Interface()
		}
		return out
	case MapType:
		out := make(map[string]any, len(v.Fields))
		for i, f := range v.Fields {
			out[f] = v.Values[i].Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders v in value position of an entry: scalars verbatim,
// vectors as "( x y z )", lists and maps in their inline forms.
func (v *Value) String() string {
	switch v.Type {
	case ScalarType:
		return v.Scalar
	case VectorType:
		parts := make([]string, 3)
		for i, c := range v.Vector {
			parts[i] = FormatFloat(c)
		}
		return "( " + strings.Join(parts, " ") + " )"
	case ListType:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = e.String()
		}
		return "( " + strings.Join(parts, " ") + " )"
	case MapType:
		var sb strings.Builder
		sb.WriteString("{ ")
		for i, f := range v.Fields {
			sb.WriteString(f)
			sb.WriteString(" ")
			sb.WriteString(v.Values[i].String())
			sb.WriteString("; ")
		}
		sb.WriteString("}")
		return sb.String()
	default:
		return ""
	}
}

// FormatFloat renders a vector component the way entries are written:
// integral values without a decimal point.
func FormatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
