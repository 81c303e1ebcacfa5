package parse

import (
	"strings"

	"github.com/foam-tools/foamedit/lines"
)

// keyWindow bounds the forward search for a key's declaration line.
// Most keys sit within a few lines of the build cursor; the fallback
// full scan below keeps pathological files correct at higher cost.
const keyWindow = 50

// A Finder locates the line whose first word is key, at or after
// from. Reset is called once per rebuild, before any lookups, so
// stateful implementations can re-index the buffer.
type Finder interface {
	FindKeyLine(b *lines.Buffer, key string, from, limit int) int
	Reset(b *lines.Buffer)
}

// NewLinearFinder returns the default two-tier lookup: a bounded
// window scan first, then a full scan of the remaining range.
func NewLinearFinder() Finder {
	return linearFinder{}
}

type linearFinder struct{}

func (linearFinder) Reset(*lines.Buffer) {}

func (linearFinder) FindKeyLine(b *lines.Buffer, key string, from, limit int) int {
	if limit > b.Len() {
		limit = b.Len()
	}
	hi := from + keyWindow
	if hi > limit {
		hi = limit
	}
	if i := scanKey(b, key, from, hi); i != -1 {
		return i
	}
	return scanKey(b, key, hi, limit)
}

func scanKey(b *lines.Buffer, key string, from, to int) int {
	for i := from; i < to; i++ {
		if firstWord(b.Line(i)) == key {
			return i
		}
	}
	return -1
}

func firstWord(line string) string {
	fs := strings.Fields(line)
	if len(fs) == 0 {
		return ""
	}
	return fs[0]
}

// NewCachingFinder decorates next with a per-rebuild index of first
// words to line numbers. Lookups fall back to next when the key is
// not a plain first word (quoted keys, inline blocks).
func NewCachingFinder(next Finder) Finder {
	return &cachingFinder{next: next}
}

type cachingFinder struct {
	next  Finder
	index map[string][]int
}

func (c *cachingFinder) Reset(b *lines.Buffer) {
	c.index = make(map[string][]int, b.Len())
	for i := 0; i < b.Len(); i++ {
		w := firstWord(b.Line(i))
		if w == "" {
			continue
		}
		c.index[w] = append(c.index[w], i)
	}
	c.next.Reset(b)
}

func (c *cachingFinder) FindKeyLine(b *lines.Buffer, key string, from, limit int) int {
	for _, i := range c.index[key] {
		if i >= from && i < limit {
			return i
		}
	}
	return c.next.FindKeyLine(b, key, from, limit)
}
