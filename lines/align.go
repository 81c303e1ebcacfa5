package lines

import "strings"

const tabWidth = 4

// ExpandTabs rewrites tabs as spaces to the next tab stop so column
// arithmetic on mixed indentation stays consistent.
func ExpandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

// InferAlignmentColumn infers the column at which sibling values in
// [start, end) are aligned: among the entry lines at the shallowest
// indentation in the span, collect the column right after each key's
// trailing spaces and pick the column used by the majority. Ties go
// to the smaller column. Returns -1 when the span holds no entries.
func InferAlignmentColumn(b *Buffer, start, end int) int {
	type cand struct {
		indent int
		col    int
	}
	var cands []cand
	for i := start; i < end && i < len(b.lines); i++ {
		line := ExpandTabs(b.lines[i])
		t := strings.TrimSpace(line)
		if t == "" || t == "{" || t == "}" || t == "(" || t == ")" || t == ");" {
			continue
		}
		if strings.HasPrefix(t, "//") || strings.HasPrefix(t, "/*") {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		keyEnd := indent
		for keyEnd < len(line) && line[keyEnd] != ' ' {
			keyEnd++
		}
		col := keyEnd
		for col < len(line) && line[col] == ' ' {
			col++
		}
		if col >= len(line) {
			// a lone key, e.g. a block name line
			continue
		}
		cands = append(cands, cand{indent: indent, col: col})
	}
	if len(cands) == 0 {
		return -1
	}
	shallowest := cands[0].indent
	for _, c := range cands[1:] {
		if c.indent < shallowest {
			shallowest = c.indent
		}
	}
	counts := map[int]int{}
	for _, c := range cands {
		if c.indent == shallowest {
			counts[c.col]++
		}
	}
	best, bestN := -1, 0
	for col, n := range counts {
		if n > bestN || (n == bestN && col < best) {
			best, bestN = col, n
		}
	}
	return best
}

// Indent returns the leading whitespace of line i, tabs expanded.
func (b *Buffer) Indent(i int) string {
	line := ExpandTabs(b.lines[i])
	return line[:len(line)-len(strings.TrimLeft(line, " "))]
}
