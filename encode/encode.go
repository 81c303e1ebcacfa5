// Package encode renders extracted dictionary values in canonical
// form: one inferred value column per block, four-space indentation,
// multi-line lists. It is the presentation path; round-trip faithful
// output comes from the line buffer, not from here.
package encode

import (
	"bufio"
	"io"
	"strings"

	"github.com/foam-tools/foamedit/ir"
)

type config struct {
	indent   string
	valueCol int
	colors   *Colors
}

type EncodeOption func(*config)

// EncodeIndent sets the indentation unit.
func EncodeIndent(s string) EncodeOption {
	return func(c *config) {
		c.indent = s
	}
}

// EncodeValueCol sets the minimum column values start at.
func EncodeValueCol(n int) EncodeOption {
	return func(c *config) {
		c.valueCol = n
	}
}

// EncodeColors renders with the given color table.
func EncodeColors(colors *Colors) EncodeOption {
	return func(c *config) {
		c.colors = colors
	}
}

// Encode writes v to w. A map value renders as entries at the top
// level; other values render in value position on one line.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	c := &config{indent: "    ", valueCol: 16}
	for _, o := range opts {
		o(c)
	}
	if c.colors == nil {
		c.colors = PlainColors()
	}
	bw := bufio.NewWriter(w)
	e := &encoder{config: c, w: bw}
	if v.Type == ir.MapType {
		e.entries("", v)
	} else {
		e.w.WriteString(e.valueText(v))
		e.w.WriteString("\n")
	}
	if e.err != nil {
		return e.err
	}
	return bw.Flush()
}

type encoder struct {
	*config
	w   *bufio.Writer
	err error
}

func (e *encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}

func (e *encoder) entries(indent string, m *ir.Value) {
	col := len(indent) + e.valueCol
	for _, f := range m.Fields {
		if n := len(indent) + len(f) + 1; n > col {
			col = n
		}
	}
	for i, f := range m.Fields {
		v := m.Values[i]
		switch v.Type {
		case ir.MapType:
			e.block(indent, f, v)
		case ir.ListType:
			e.list(indent, f, v)
		default:
			e.entry(indent, f, e.valueText(v), col)
		}
	}
}

func (e *encoder) entry(indent, key, value string, col int) {
	line := indent + e.colors.Color(ir.ScalarType, FieldColor, key)
	n := len(indent) + len(key)
	pad := 1
	if n+1 <= col {
		pad = col - n
	}
	e.write(line + strings.Repeat(" ", pad) + value + e.sep(";") + "\n")
}

func (e *encoder) block(indent, key string, m *ir.Value) {
	e.write(indent + e.colors.Color(ir.MapType, FieldColor, key) + "\n")
	e.write(indent + e.sep("{") + "\n")
	e.entries(indent+e.indent, m)
	e.write(indent + e.sep("}") + "\n")
}

func (e *encoder) list(indent, key string, l *ir.Value) {
	e.write(indent + e.colors.Color(ir.ListType, FieldColor, key) + "\n")
	e.write(indent + e.sep("(") + "\n")
	inner := indent + e.indent
	for _, elem := range l.Elems {
		if elem.Type == ir.MapType {
			e.write(inner + e.sep("{") + "\n")
			e.entries(inner+e.indent, elem)
			e.write(inner + e.sep("}") + "\n")
			continue
		}
		e.write(inner + e.valueText(elem) + "\n")
	}
	e.write(indent + e.sep(")") + e.sep(";") + "\n")
}

func (e *encoder) valueText(v *ir.Value) string {
	return e.colors.Color(v.Type, ValueColor, v.String())
}

func (e *encoder) sep(s string) string {
	return e.colors.Color(ir.MapType, SepColor, s)
}
