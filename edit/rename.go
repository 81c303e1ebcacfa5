package edit

import (
	"strings"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
)

// Rename replaces the key at route, re-padding an inline entry so its
// value keeps the column it had.
func Rename(b *lines.Buffer, root *ir.Node, route, newKey string) bool {
	if newKey == "" || strings.ContainsAny(newKey, " \t{}();.") {
		return false
	}
	n := findNode(root, route)
	if n == nil || n.Parent == nil || n.Key == "" {
		return false
	}
	line := b.Line(n.LineStart)
	if n.KeyColStart < 0 || n.KeyColEnd > len(line) {
		return false
	}
	out := line[:n.KeyColStart] + newKey
	if n.ValueColEnd > n.ValueColStart && n.ValueColStart >= n.KeyColEnd {
		pad := n.ValueColStart - n.KeyColStart - len(newKey)
		if pad < 1 {
			pad = 1
		}
		out += strings.Repeat(" ", pad) + line[n.ValueColStart:]
	} else {
		out += line[n.KeyColEnd:]
	}
	b.SetLine(n.LineStart, out)
	b.CleanupBlankLines()
	b.MarkDirty()
	return true
}
