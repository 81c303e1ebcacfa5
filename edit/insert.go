package edit

import (
	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
)

// InsertOptions steer placement and rendering of a new entry. The
// zero value appends at the bottom of the target block, infers the
// value column from siblings and renders lists inline.
type InsertOptions struct {
	Anchor    string // sibling key to place the entry next to
	Before    bool   // place before the anchor instead of after it
	Top       bool   // place at the top of the block
	Multiline bool   // render list values one element per line
	ValueCol  int    // alignment override, 0 infers from siblings
}

// Insert adds value at route, creating missing intermediate blocks
// along the way. A route that already resolves is left untouched and
// reported as success, so ensure-style calls are safe to repeat.
// Indexed segments never vivify: the list and the item must exist.
func Insert(b *lines.Buffer, root *ir.Node, route string, value *ir.Value, opts InsertOptions) bool {
	segs, err := ir.ParseRoute(route)
	if err != nil || len(segs) == 0 || value == nil {
		return false
	}
	if Resolve(root, route) != nil {
		return true
	}
	cur := root
	i := 0
	for i < len(segs) {
		next := step(cur, segs[i])
		if next == nil {
			break
		}
		cur = next
		i++
	}
	rest := segs[i:]
	for _, s := range rest {
		if s.Index >= 0 {
			return false
		}
	}
	if len(rest) == 0 || cur.Value == nil || cur.Value.Type != ir.MapType {
		return false
	}

	v := value
	for j := len(rest) - 1; j >= 1; j-- {
		m := ir.Map()
		m.SetField(rest[j].Key, v)
		v = m
	}
	key := rest[0].Key

	if start, end, ok := interior(b, cur); ok {
		return insertEntry(b, cur, start, end, key, v, opts)
	}
	// the target map sits on a single line
	return insertInlineField(b, cur, key, v)
}

func insertEntry(b *lines.Buffer, cur *ir.Node, start, end int, key string, v *ir.Value, opts InsertOptions) bool {
	indent := ""
	if cur.Parent != nil {
		indent = b.Indent(cur.LineStart) + indentStep
	}
	col := opts.ValueCol
	if col <= 0 {
		col = lines.InferAlignmentColumn(b, start, end)
	}
	if col <= 0 {
		col = DefaultValueCol
	}
	at := end
	switch {
	case opts.Anchor != "":
		if sib := cur.ChildMap[opts.Anchor]; len(sib) > 0 {
			if opts.Before {
				at = sib[0].LineStart
			} else {
				at = lastLine(sib[0]) + 1
			}
		}
	case opts.Top:
		at = start
	}
	b.Insert(at, renderValue(indent, key, v, col, opts.Multiline)...)
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}

// insertInlineField splices "key value;" into a brace group written
// on one line, before its closing brace.
func insertInlineField(b *lines.Buffer, n *ir.Node, key string, v *ir.Value) bool {
	if v.Type == ir.MapType || (v.Type == ir.ListType && len(v.Elems) > 0 && !v.Elems[0].Type.IsLeaf()) {
		return false
	}
	g, ok := itemSpan(b, n)
	if !ok {
		return false
	}
	line := b.Line(n.LineStart)
	at := g.to - 1
	sep := " "
	if at > g.from+1 && line[at-1] == ' ' {
		sep = ""
	}
	b.SetLine(n.LineStart, line[:at]+sep+key+" "+v.String()+";"+line[at:])
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}

// InsertListItem appends a map entry to the paren list at route,
// matching the indentation and value column of the last existing item
// when there is one.
func InsertListItem(b *lines.Buffer, root *ir.Node, route string, item *ir.Value) bool {
	if item == nil || item.Type != ir.MapType {
		return false
	}
	n := findNode(root, route)
	if n == nil || n.Value == nil || n.Value.Type != ir.ListType {
		return false
	}
	start, end, ok := interior(b, n)
	if !ok {
		return false
	}
	indent := b.Indent(n.LineStart) + indentStep
	if items := n.Items(); len(items) > 0 {
		indent = b.Indent(items[len(items)-1].LineStart)
	}
	col := lines.InferAlignmentColumn(b, start, end)
	b.Insert(end, renderListItem(indent, item, col)...)
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}
