// Package edit implements route-addressed mutation of the line
// buffer. Mutators operate on lines directly, using the node tree
// only for addressing; they either fully commit a change or leave the
// buffer byte-identical, report the outcome as a bool, and finish by
// normalizing blank lines and marking the buffer dirty.
package edit

import (
	"strings"

	"github.com/foam-tools/foamedit/ir"
)

// DefaultValueCol is the absolute column a value starts at when no
// sibling alignment can be inferred.
const DefaultValueCol = 16

const indentStep = "    "

// entryLine renders "key<pad>value;" with the value starting at
// absolute column valueCol when the key fits, else one space apart.
func entryLine(indent, key, value string, valueCol int) string {
	line := indent + key
	if len(line)+1 <= valueCol {
		line += strings.Repeat(" ", valueCol-len(line))
	} else {
		line += " "
	}
	return line + value + ";"
}

// renderValue produces the line(s) of a new entry for key at the
// given indentation. Scalars and vectors render inline; a list
// renders inline unless multiline is set; a map renders as a brace
// block with one inferred value column for all fields.
func renderValue(indent, key string, v *ir.Value, valueCol int, multiline bool) []string {
	switch v.Type {
	case ir.ScalarType, ir.VectorType:
		return []string{entryLine(indent, key, v.String(), valueCol)}
	case ir.ListType:
		if !multiline {
			return []string{entryLine(indent, key, v.String(), valueCol)}
		}
		out := []string{indent + key, indent + "("}
		inner := indent + indentStep
		for _, e := range v.Elems {
			out = append(out, renderListItem(inner, e, 0)...)
		}
		return append(out, indent+");")
	case ir.MapType:
		return renderBlock(indent, key, v)
	default:
		return nil
	}
}

// renderListItem renders one list element at the given indentation.
// A positive col pins the value column of map fields, otherwise one is
// derived from the field names.
func renderListItem(indent string, v *ir.Value, col int) []string {
	switch v.Type {
	case ir.MapType:
		if col <= 0 {
			col = mapValueCol(indent, v)
		}
		out := []string{indent + "{"}
		inner := indent + indentStep
		for i, f := range v.Fields {
			out = append(out, entryLine(inner, f, v.Values[i].String(), col))
		}
		return append(out, indent+"}")
	default:
		return []string{indent + v.String()}
	}
}

func renderBlock(indent, key string, m *ir.Value) []string {
	out := []string{indent + key, indent + "{"}
	inner := indent + indentStep
	col := mapValueCol(indent, m)
	for i, f := range m.Fields {
		fv := m.Values[i]
		switch fv.Type {
		case ir.MapType:
			out = append(out, renderBlock(inner, f, fv)...)
		case ir.ListType:
			out = append(out, renderValue(inner, f, fv, col, true)...)
		default:
			out = append(out, entryLine(inner, f, fv.String(), col))
		}
	}
	return append(out, indent+"}")
}

// mapValueCol picks one value column for all fields of a rendered
// block: the default, widened when a field name would collide.
func mapValueCol(indent string, m *ir.Value) int {
	col := DefaultValueCol
	for _, f := range m.Fields {
		need := len(indent) + len(indentStep) + len(f) + 1
		if need > col {
			col = need
		}
	}
	return col
}
