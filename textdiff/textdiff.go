// Package textdiff renders line diffs between two dictionary
// renditions.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines compares two texts line by line and returns a diff listing
// with "+ ", "- ", and "  " prefixes. changed is false when the texts
// are equal.
func Lines(from, to string) (out string, changed bool) {
	diffCfg := diffpatch.New()
	ca, cb, arr := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(ca, cb, false), arr)

	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
			changed = true
		case diffpatch.DiffDelete:
			prefix = "- "
			changed = true
		}
		text := strings.TrimSuffix(diff.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String(), changed
}
