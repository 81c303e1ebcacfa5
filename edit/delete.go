package edit

import (
	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
)

// Delete removes the entry, block, or list item at route.
func Delete(b *lines.Buffer, root *ir.Node, route string) bool {
	n := findNode(root, route)
	if n == nil {
		return deleteInlineField(b, root, route)
	}
	if n.Parent == nil {
		return false
	}
	if n.BlockEndLine < 0 && n.Key == "" {
		return deleteItem(b, n)
	}
	b.Delete(n.LineStart, lastLine(n)+1)
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}

func deleteItem(b *lines.Buffer, n *ir.Node) bool {
	p := n.Parent
	if p != nil && p.LineStart == n.LineStart {
		sp, ok := itemSpan(b, n)
		if !ok {
			return false
		}
		line := b.Line(n.LineStart)
		from := sp.from
		for from > 1 && line[from-1] == ' ' && line[from-2] != '(' {
			from--
		}
		b.SetLine(n.LineStart, line[:from]+line[sp.to:])
	} else {
		b.Delete(n.LineStart, n.LineStart+1)
	}
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}

// deleteInlineField removes a field from a map written on one line.
func deleteInlineField(b *lines.Buffer, root *ir.Node, route string) bool {
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
	from := fs.from
	for from > g.from+1 && line[from-1] == ' ' {
		from--
	}
	b.SetLine(parent.LineStart, line[:from]+line[fs.to:])
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}
