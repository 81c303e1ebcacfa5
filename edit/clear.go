package edit

import (
	"strings"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
)

// Clear empties a block or list, keeping the declaration line and the
// delimiters.
func Clear(b *lines.Buffer, root *ir.Node, route string) bool {
	n := findNode(root, route)
	if n == nil || n.Parent == nil || n.BlockEndLine < 0 {
		return false
	}
	if start, end, ok := interior(b, n); ok {
		b.Delete(start, end)
		b.CleanupBlankLines()
		b.MarkDirty()
		return true
	}
	// delimiters share a line
	open, closer := "{", byte('}')
	if n.Value != nil && n.Value.Type == ir.ListType {
		open, closer = "(", byte(')')
	}
	ol := openDelimLine(b, n, open)
	if ol == -1 {
		return false
	}
	line := b.Line(ol)
	i := strings.Index(line, open)
	j := strings.LastIndexByte(line, closer)
	if j <= i {
		return false
	}
	b.SetLine(ol, line[:i+1]+line[j:])
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}
