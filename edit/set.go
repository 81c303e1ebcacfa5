package edit

import (
	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
)

// Set replaces the value at route. The route must already resolve;
// Set never creates path segments. An inline entry keeps everything
// outside its value span, including a trailing comment.
func Set(b *lines.Buffer, root *ir.Node, route string, v *ir.Value) bool {
	if v == nil {
		return false
	}
	n := findNode(root, route)
	if n == nil {
		return setInlineField(b, root, route, v)
	}
	if n.Parent == nil {
		return false
	}
	switch {
	case n.BlockEndLine >= 0:
		return setComposite(b, n, v)
	case n.Key == "":
		return setItem(b, n, v)
	default:
		return setInline(b, n, v)
	}
}

func setInline(b *lines.Buffer, n *ir.Node, v *ir.Value) bool {
	if v.Type == ir.MapType {
		// the scalar entry becomes a block
		indent := b.Indent(n.LineStart)
		lns := renderBlock(indent, n.Key, v)
		b.Delete(n.LineStart, n.LineStart+1)
		b.Insert(n.LineStart, lns...)
	} else {
		line := b.Line(n.LineStart)
		if n.ValueColEnd > len(line) || n.ValueColStart > n.ValueColEnd {
			return false
		}
		b.SetLine(n.LineStart, line[:n.ValueColStart]+v.String()+line[n.ValueColEnd:])
	}
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}

// setComposite rewrites a block, paren list, or multi-line list item.
func setComposite(b *lines.Buffer, n *ir.Node, v *ir.Value) bool {
	first, last := n.LineStart, lastLine(n)
	indent := b.Indent(first)
	col := 0
	if s, e, ok := interior(b, n.Parent); ok {
		col = lines.InferAlignmentColumn(b, s, e)
	}
	if col <= 0 {
		col = DefaultValueCol
	}
	multiline := n.BlockEndLine > n.LineStart && v.Type == ir.ListType
	var lns []string
	if n.Key == "" {
		lns = renderListItem(indent, v, 0)
	} else {
		lns = renderValue(indent, n.Key, v, col, multiline)
	}
	if len(lns) == 0 {
		return false
	}
	b.Delete(first, last+1)
	b.Insert(first, lns...)
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}

// setItem replaces a list element that has no line span of its own.
func setItem(b *lines.Buffer, n *ir.Node, v *ir.Value) bool {
	p := n.Parent
	if p != nil && p.LineStart == n.LineStart {
		if v.Type == ir.MapType {
			return false
		}
		sp, ok := itemSpan(b, n)
		if !ok {
			return false
		}
		line := b.Line(n.LineStart)
		b.SetLine(n.LineStart, line[:sp.from]+v.String()+line[sp.to:])
	} else {
		if !v.Type.IsLeaf() {
			return false
		}
		b.SetLine(n.LineStart, b.Indent(n.LineStart)+v.String())
	}
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}

// setInlineField updates a field of a map written on one line, for
// routes the node tree cannot address at line granularity.
func setInlineField(b *lines.Buffer, root *ir.Node, route string, v *ir.Value) bool {
	if !v.Type.IsLeaf() {
		return false
	}
	parent, field, ok := inlineFieldTarget(root, route)
	if !ok {
		return false
	}
	g, ok := itemSpan(b, parent)
	if !ok {
		return false
	}
	line := b.Line(parent.LineStart)
	fs, ok := fieldSpan(line, g, field)
	if !ok {
		return false
	}
	// keep the key and its spacing, replace through the ';'
	i := fs.from
	for i < fs.to && line[i] != ' ' && line[i] != '\t' {
		i++
	}
	for i < fs.to && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	b.SetLine(parent.LineStart, line[:i]+v.String()+";"+line[fs.to:])
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}

// inlineFieldTarget resolves all but the last segment of route to a
// node holding a one-line map that has the final segment as a field.
func inlineFieldTarget(root *ir.Node, route string) (*ir.Node, string, bool) {
	segs, err := ir.ParseRoute(route)
	if err != nil || len(segs) < 2 {
		return nil, "", false
	}
	last := segs[len(segs)-1]
	if last.Index >= 0 {
		return nil, "", false
	}
	cur := root
	for _, s := range segs[:len(segs)-1] {
		cur = step(cur, s)
		if cur == nil {
			return nil, "", false
		}
	}
	if cur.Value == nil || cur.Value.Field(last.Key) == nil {
		return nil, "", false
	}
	return cur, last.Key, true
}
