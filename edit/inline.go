package edit

import (
	"strings"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
)

// span is a half-open [from, to) byte range on one line.
type span struct {
	from, to int
}

// listSpans locates the top-level elements of a parenthesized list
// written on a single line, scanning from the opening paren.
func listSpans(line string, open int) []span {
	var spans []span
	i := open + 1
	for i < len(line) {
		switch line[i] {
		case ' ', '\t':
			i++
			continue
		case ')':
			return spans
		}
		start := i
		if line[i] == '{' || line[i] == '(' {
			d := 0
			for i < len(line) {
				switch line[i] {
				case '{', '(':
					d++
				case '}', ')':
					d--
				}
				i++
				if d == 0 {
					break
				}
			}
		} else {
			for i < len(line) && line[i] != ' ' && line[i] != '\t' && line[i] != ')' {
				i++
			}
		}
		spans = append(spans, span{from: start, to: i})
	}
	return spans
}

// groupSpan finds the brace group starting at the first '{' at or
// after from.
func groupSpan(line string, from int) (span, bool) {
	i := strings.IndexByte(line[from:], '{')
	if i == -1 {
		return span{}, false
	}
	i += from
	d := 0
	for j := i; j < len(line); j++ {
		switch line[j] {
		case '{':
			d++
		case '}':
			d--
		}
		if d == 0 {
			return span{from: i, to: j + 1}, true
		}
	}
	return span{}, false
}

// itemSpan is the char span of a node that shares its line with other
// text: an element of an inline list, or a map written on one line.
func itemSpan(b *lines.Buffer, n *ir.Node) (span, bool) {
	line := b.Line(n.LineStart)
	p := n.Parent
	if p != nil && p.Value != nil && p.Value.Type == ir.ListType && p.LineStart == n.LineStart {
		open := strings.IndexByte(line[p.KeyColEnd:], '(')
		if open == -1 {
			return span{}, false
		}
		spans := listSpans(line, p.KeyColEnd+open)
		ord := itemOrdinal(n)
		if ord >= len(spans) {
			return span{}, false
		}
		return spans[ord], true
	}
	return groupSpan(line, 0)
}

// fieldSpan locates the "key value;" statement for key inside the
// group [g.from, g.to) on line. The returned span covers key through
// the terminating ';'.
func fieldSpan(line string, g span, key string) (span, bool) {
	i := g.from + 1
	for i < g.to {
		for i < g.to && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		start := i
		semi := strings.IndexByte(line[i:g.to], ';')
		if semi == -1 {
			break
		}
		end := i + semi + 1
		stmt := strings.TrimSpace(line[start : end-1])
		if w := strings.Fields(stmt); len(w) > 0 && w[0] == key {
			return span{from: start, to: end}, true
		}
		i = end
	}
	return span{}, false
}
