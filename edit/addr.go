package edit

import (
	"strings"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
)

// Find resolves a route against the positioned tree. Beyond plain
// node lookup it accepts a name match on list items: "boundary.inlet"
// selects the element of a paren list whose name field is inlet.
func Find(root *ir.Node, route string) *ir.Node {
	return findNode(root, route)
}

func findNode(root *ir.Node, route string) *ir.Node {
	segs, err := ir.ParseRoute(route)
	if err != nil {
		return nil
	}
	cur := root
	for _, seg := range segs {
		cur = step(cur, seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Resolve returns the value at route, following the node tree as far
// as it goes and finishing in the extracted values for segments the
// tree cannot address, such as fields of a map written on one line.
func Resolve(root *ir.Node, route string) *ir.Value {
	segs, err := ir.ParseRoute(route)
	if err != nil {
		return nil
	}
	cur := root
	for i, seg := range segs {
		next := step(cur, seg)
		if next == nil {
			return cur.Value.Resolve(ir.RouteString(segs[i:]))
		}
		cur = next
	}
	return cur.Value
}

// step resolves one route segment against cur.
func step(cur *ir.Node, seg ir.Seg) *ir.Node {
	lst := cur.ChildMap[seg.Key]
	switch {
	case len(lst) == 0:
		if seg.Index >= 0 {
			return nil
		}
		return namedItem(cur, seg.Key)
	case seg.Index < 0:
		return lst[0]
	case len(lst) > 1:
		// repeated sibling keys: one node per occurrence
		if seg.Index >= len(lst) {
			return nil
		}
		return lst[seg.Index]
	default:
		items := lst[0].Items()
		if seg.Index >= len(items) {
			return nil
		}
		return items[seg.Index]
	}
}

func namedItem(cur *ir.Node, key string) *ir.Node {
	for _, item := range cur.Items() {
		if f := item.Value.Field("name"); f != nil && f.Scalar == key {
			return item
		}
	}
	return nil
}

// lastLine is the final line of the node's span.
func lastLine(n *ir.Node) int {
	if n.BlockEndLine >= 0 {
		return n.BlockEndLine
	}
	return n.LineEnd
}

func openDelimLine(b *lines.Buffer, n *ir.Node, delim string) int {
	for i := n.LineStart; i <= n.BlockEndLine && i < b.Len(); i++ {
		if strings.Contains(b.Line(i), delim) {
			return i
		}
	}
	return -1
}

// interior returns the line range strictly between a block node's
// delimiters. ok is false when the node has no multi-line body.
func interior(b *lines.Buffer, n *ir.Node) (start, end int, ok bool) {
	if n.Parent == nil {
		return 0, b.Len(), true
	}
	if n.BlockEndLine < 0 {
		return 0, 0, false
	}
	delim := "{"
	if n.Value != nil && n.Value.Type == ir.ListType {
		delim = "("
	}
	open := openDelimLine(b, n, delim)
	if open == -1 || open >= n.BlockEndLine {
		return 0, 0, false
	}
	return open + 1, n.BlockEndLine, true
}

// itemOrdinal counts the earlier sibling items sharing the node's
// declaration line, giving its group position for char-level edits.
func itemOrdinal(n *ir.Node) int {
	if n.Parent == nil {
		return 0
	}
	ord := 0
	for _, s := range n.Parent.Items() {
		if s == n {
			break
		}
		if s.LineStart == n.LineStart {
			ord++
		}
	}
	return ord
}
