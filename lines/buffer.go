// Package lines holds the mutable line buffer that is the source of
// truth for serialized output, plus the block-boundary and formatting
// helpers shared by all mutators. The buffer assumes a single writer;
// callers needing concurrent access serialize externally.
package lines

import "strings"

type Buffer struct {
	lines []string
	dirty bool
	// a trailing newline in the source survives edits
	finalNL bool
}

func New(text string) *Buffer {
	b := &Buffer{
		finalNL: strings.HasSuffix(text, "\n"),
	}
	if text == "" {
		b.finalNL = true
		return b
	}
	s := strings.TrimSuffix(text, "\n")
	b.lines = strings.Split(s, "\n")
	return b
}

func (b *Buffer) Len() int {
	return len(b.lines)
}

func (b *Buffer) Line(i int) string {
	return b.lines[i]
}

func (b *Buffer) SetLine(i int, s string) {
	b.lines[i] = s
}

// Insert places lns before index i.
func (b *Buffer) Insert(i int, lns ...string) {
	b.lines = append(b.lines[:i], append(append([]string{}, lns...), b.lines[i:]...)...)
}

// Delete removes lines [i, j).
func (b *Buffer) Delete(i, j int) {
	b.lines = append(b.lines[:i], b.lines[j:]...)
}

func (b *Buffer) Text() string {
	s := strings.Join(b.lines, "\n")
	if b.finalNL && s != "" {
		s += "\n"
	}
	return s
}

func (b *Buffer) MarkDirty() {
	b.dirty = true
}

func (b *Buffer) ClearDirty() {
	b.dirty = false
}

func (b *Buffer) Dirty() bool {
	return b.dirty
}

// BlockEnd returns the line index where the brace block opened at or
// after start closes, by depth counting, or -1 on unbalanced input.
// Braces inside comments count; the format in scope does not put
// braces in comment bodies.
func (b *Buffer) BlockEnd(start int) int {
	return b.depthEnd(start, '{', '}')
}

// ParenEnd is BlockEnd for parenthesized groups.
func (b *Buffer) ParenEnd(start int) int {
	return b.depthEnd(start, '(', ')')
}

func (b *Buffer) depthEnd(start int, open, close byte) int {
	depth := 0
	opened := false
	for i := start; i < len(b.lines); i++ {
		line := b.lines[i]
		for j := 0; j < len(line); j++ {
			switch line[j] {
			case open:
				depth++
				opened = true
			case close:
				depth--
			}
		}
		if opened && depth <= 0 {
			return i
		}
	}
	return -1
}

// CleanupBlankLines collapses every run of blank lines to a single
// blank line. Idempotent; every mutation ends with this
// normalization.
func (b *Buffer) CleanupBlankLines() {
	out := b.lines[:0]
	blank := false
	for _, line := range b.lines {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, line)
			continue
		}
		blank = false
		out = append(out, line)
	}
	b.lines = out
}
