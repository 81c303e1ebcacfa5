package parse

import (
	"strings"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
)

// Build attaches source positions to an extracted value tree. For
// each map it walks children in declaration order and locates every
// key's line through the finder; composite values get their closing
// line by depth counting from the opening line. Fields whose
// declaration cannot be located are left out of the node tree.
func Build(v *ir.Value, b *lines.Buffer, f Finder) *ir.Node {
	f.Reset(b)
	root := ir.NewNode("", v)
	root.LineStart = 0
	root.LineEnd = b.Len() - 1
	root.BlockEndLine = b.Len() - 1
	bd := &builder{b: b, f: f}
	bd.buildMap(root, v, 0, b.Len())
	return root
}

type builder struct {
	b *lines.Buffer
	f Finder
}

func (bd *builder) buildMap(parent *ir.Node, m *ir.Value, cursor, limit int) {
	for i, key := range m.Fields {
		val := m.Values[i]
		k := bd.f.FindKeyLine(bd.b, key, cursor, limit)
		if k == -1 {
			continue
		}
		switch {
		case val.Type == ir.MapType:
			n := bd.blockNode(parent, key, val, k, limit)
			if n != nil && n.BlockEndLine >= 0 {
				cursor = n.BlockEndLine + 1
			} else {
				cursor = k + 1
			}
		case val.Type == ir.ListType && bd.opensParen(key, k, limit):
			n := bd.listNode(parent, key, val, k, limit)
			if n != nil && n.BlockEndLine >= 0 {
				cursor = n.BlockEndLine + 1
			} else {
				cursor = k + 1
			}
		case val.Type == ir.ListType:
			// repeated sibling keys merged into a list: one node
			// per occurrence, found in declaration order
			for _, elem := range val.Elems {
				ek := bd.f.FindKeyLine(bd.b, key, cursor, limit)
				if ek == -1 {
					break
				}
				var n *ir.Node
				if elem.Type == ir.MapType {
					n = bd.blockNode(parent, key, elem, ek, limit)
				} else {
					n = bd.inlineNode(parent, key, elem, ek)
				}
				if n != nil && n.BlockEndLine >= 0 {
					cursor = n.BlockEndLine + 1
				} else {
					cursor = ek + 1
				}
			}
		default:
			bd.inlineNode(parent, key, val, k)
			cursor = k + 1
		}
	}
}

// opensParen reports whether the value declared for the key at line k
// starts with '(' rather than being a merged run of repeated keys.
func (bd *builder) opensParen(key string, k, limit int) bool {
	line := bd.b.Line(k)
	rest := line[strings.Index(line, key)+len(key):]
	if t := strings.TrimLeft(rest, " \t"); t != "" {
		return t[0] == '('
	}
	for i := k + 1; i < limit && i < bd.b.Len(); i++ {
		t := strings.TrimSpace(bd.b.Line(i))
		if t == "" || strings.HasPrefix(t, "//") {
			continue
		}
		return t[0] == '('
	}
	return false
}

func (bd *builder) inlineNode(parent *ir.Node, key string, val *ir.Value, k int) *ir.Node {
	line := bd.b.Line(k)
	n := ir.NewNode(key, val)
	n.LineStart, n.LineEnd = k, k
	n.KeyColStart = strings.Index(line, key)
	n.KeyColEnd = n.KeyColStart + len(key)
	vs := n.KeyColEnd
	for vs < len(line) && (line[vs] == ' ' || line[vs] == '\t') {
		vs++
	}
	ve := vs
	for ve < len(line) && line[ve] != ';' {
		if line[ve] == '/' && ve+1 < len(line) && line[ve+1] == '/' {
			break
		}
		ve++
	}
	for ve > vs && (line[ve-1] == ' ' || line[ve-1] == '\t') {
		ve--
	}
	n.ValueColStart, n.ValueColEnd = vs, ve
	parent.AddChild(n)
	return n
}

func (bd *builder) blockNode(parent *ir.Node, key string, val *ir.Value, k, limit int) *ir.Node {
	n := ir.NewNode(key, val)
	n.LineStart = k
	line := bd.b.Line(k)
	n.KeyColStart = strings.Index(line, key)
	n.KeyColEnd = n.KeyColStart + len(key)
	end := bd.b.BlockEnd(k)
	if end == -1 || end >= limit {
		n.LineEnd = k
		parent.AddChild(n)
		return n
	}
	n.BlockEndLine = end
	n.LineEnd = end
	parent.AddChild(n)
	open := k
	for open < end && !strings.Contains(bd.b.Line(open), "{") {
		open++
	}
	bd.buildMap(n, val, open+1, end)
	return n
}

func (bd *builder) listNode(parent *ir.Node, key string, val *ir.Value, k, limit int) *ir.Node {
	n := ir.NewNode(key, val)
	n.LineStart = k
	line := bd.b.Line(k)
	n.KeyColStart = strings.Index(line, key)
	n.KeyColEnd = n.KeyColStart + len(key)
	end := bd.b.ParenEnd(k)
	if end == -1 {
		n.LineEnd = k
		parent.AddChild(n)
		return n
	}
	n.BlockEndLine = end
	n.LineEnd = end
	parent.AddChild(n)

	open := k
	for open < end && !strings.Contains(bd.b.Line(open), "(") {
		open++
	}
	if open == end {
		// inline list, all items share the declaration line
		for _, elem := range val.Elems {
			item := ir.NewNode("", elem)
			item.LineStart, item.LineEnd = k, k
			n.AddChild(item)
			if elem.Type == ir.MapType {
				bd.buildMap(item, elem, k, end+1)
			}
		}
		return n
	}

	j := open + 1
	for _, elem := range val.Elems {
		if elem.Type == ir.MapType {
			for j < end && !strings.Contains(bd.b.Line(j), "{") {
				j++
			}
			if j >= end {
				break
			}
			itemEnd := bd.b.BlockEnd(j)
			if itemEnd == -1 || itemEnd > end {
				break
			}
			item := ir.NewNode("", elem)
			item.LineStart = j
			item.LineEnd = itemEnd
			item.BlockEndLine = itemEnd
			n.AddChild(item)
			bd.buildMap(item, elem, j, itemEnd+1)
			j = itemEnd + 1
			continue
		}
		for j < end {
			t := strings.TrimSpace(bd.b.Line(j))
			if t == "" || t == "(" || strings.HasPrefix(t, "//") {
				j++
				continue
			}
			break
		}
		if j >= end {
			break
		}
		item := ir.NewNode("", elem)
		item.LineStart, item.LineEnd = j, j
		n.AddChild(item)
		j++
	}
	return n
}
