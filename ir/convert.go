package ir

import (
	"fmt"
	"sort"
	"strconv"
)

// From converts a plain Go value to a Value. Strings and numbers map
// to scalars, a 3-element numeric slice to a vector, other slices to
// lists and maps to maps. Map keys are sorted so conversion is
// deterministic; callers that care about field order build the Value
// directly.
func From(v any) *Value {
	switch x := v.(type) {
	case *Value:
		return x
	case nil:
		return Scalar("")
	case string:
		return Scalar(x)
	case bool:
		return Scalar(strconv.FormatBool(x))
	case int:
		return Scalar(strconv.Itoa(x))
	case int64:
		return Scalar(strconv.FormatInt(x, 10))
	case float64:
		return Scalar(FormatFloat(x))
	case [3]float64:
		return Vector(x[0], x[1], x[2])
	case []float64:
		if len(x) == 3 {
			return Vector(x[0], x[1], x[2])
		}
		elems := make([]*Value, len(x))
		for i, f := range x {
			elems[i] = Scalar(FormatFloat(f))
		}
		return List(elems...)
	case []int:
		if len(x) == 3 {
			return Vector(float64(x[0]), float64(x[1]), float64(x[2]))
		}
		elems := make([]*Value, len(x))
		for i, n := range x {
			elems[i] = Scalar(strconv.Itoa(n))
		}
		return List(elems...)
	case []string:
		elems := make([]*Value, len(x))
		for i, s := range x {
			elems[i] = Scalar(s)
		}
		return List(elems...)
	case []any:
		elems := make([]*Value, len(x))
		for i, e := range x {
			elems[i] = From(e)
		}
		return List(elems...)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := Map()
		for _, k := range keys {
			m.SetField(k, From(x[k]))
		}
		return m
	case map[string]string:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := Map()
		for _, k := range keys {
			m.SetField(k, Scalar(x[k]))
		}
		return m
	default:
		return Scalar(fmt.Sprintf("%v", x))
	}
}
