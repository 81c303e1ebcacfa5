// Package parse turns a token stream into the extracted value
// structure and binds that structure back to source positions.
package parse

import (
	"strconv"
	"strings"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/token"
)

// Extract consumes a token stream into one root Map value. The walk
// is recursive descent over brace/paren nesting; it is tolerant of
// stray punctuation, leaving structural validation to the caller.
// Repeated sibling keys collapse into a single field holding a list
// of the occurrences, in first-occurrence position.
func Extract(toks []token.Token) *ir.Value {
	p := &extractor{toks: toks}
	v, _ := p.parseMap(0, true)
	return v
}

type extractor struct {
	toks []token.Token
}

func (p *extractor) nextCode(i int) int {
	for i < len(p.toks) {
		if p.toks[i].IsCode() {
			return i
		}
		i++
	}
	return -1
}

// parseMap reads entries until the matching '}' (or end of input at
// top level) and returns the map plus the index after the consumed
// region.
func (p *extractor) parseMap(i int, top bool) (*ir.Value, int) {
	m := ir.Map()
	type occ struct {
		key string
		val *ir.Value
	}
	var occs []occ
	for {
		ci := p.nextCode(i)
		if ci == -1 {
			i = len(p.toks)
			break
		}
		t := &p.toks[ci]
		if t.Type == token.TRBrace {
			i = ci + 1
			if top {
				// stray close at top level, skip it
				continue
			}
			break
		}
		if t.Type != token.TWord && t.Type != token.TString {
			// stray punctuation
			i = ci + 1
			continue
		}
		key := t.Text()
		vi := p.nextCode(ci + 1)
		if vi == -1 {
			occs = append(occs, occ{key: key, val: ir.Scalar("")})
			i = len(p.toks)
			break
		}
		switch p.toks[vi].Type {
		case token.TLBrace:
			sub, next := p.parseMap(vi+1, false)
			occs = append(occs, occ{key: key, val: sub})
			i = next
		case token.TLParen:
			val, next := p.parseGroup(vi + 1)
			// the list terminator
			if si := p.nextCode(next); si != -1 && p.toks[si].Type == token.TSemi {
				next = si + 1
			}
			occs = append(occs, occ{key: key, val: val})
			i = next
		default:
			val, next := p.parseInline(vi)
			occs = append(occs, occ{key: key, val: val})
			i = next
		}
	}
	// collapse repeated keys into a list at the first occurrence
	counts := map[string]int{}
	for _, o := range occs {
		counts[o.key]++
	}
	seen := map[string]bool{}
	for _, o := range occs {
		if counts[o.key] == 1 {
			m.SetField(o.key, o.val)
			continue
		}
		if seen[o.key] {
			lst := m.Field(o.key)
			lst.Elems = append(lst.Elems, o.val)
			continue
		}
		seen[o.key] = true
		m.SetField(o.key, ir.List(o.val))
	}
	return m, i
}

// parseInline reads an inline scalar or vector value: everything up
// to the statement terminator. The raw text between the first and
// last value token is kept so spacing inside composite scalars like
// "2(wall patch)" survives.
func (p *extractor) parseInline(i int) (*ir.Value, int) {
	start := i
	last := i - 1
	depth := 0
	for i < len(p.toks) {
		t := &p.toks[i]
		switch t.Type {
		case token.TSemi:
			if depth == 0 {
				return p.inlineValue(start, last), i + 1
			}
		case token.TRBrace:
			if depth == 0 {
				// missing ';' before a closing brace
				return p.inlineValue(start, last), i
			}
		case token.TLParen:
			depth++
		case token.TRParen:
			depth--
		}
		if t.IsCode() {
			last = i
		}
		i++
	}
	return p.inlineValue(start, last), i
}

func (p *extractor) inlineValue(start, last int) *ir.Value {
	if last < start {
		return ir.Scalar("")
	}
	// a lone paren group in value position: vector or inline list
	ci := p.nextCode(start)
	if ci != -1 && p.toks[ci].Type == token.TLParen {
		if end := p.groupEnd(ci); end == p.lastCode(ci, last) {
			v, _ := p.parseGroup(ci + 1)
			return v
		}
	}
	var sb strings.Builder
	for i := start; i <= last; i++ {
		switch p.toks[i].Type {
		case token.TLineComment, token.TBlockComment:
			continue
		}
		sb.Write(p.toks[i].Bytes)
	}
	return ir.Scalar(strings.TrimSpace(sb.String()))
}

// groupEnd returns the index of the ')' matching the '(' at i.
func (p *extractor) groupEnd(i int) int {
	depth := 0
	for ; i < len(p.toks); i++ {
		switch p.toks[i].Type {
		case token.TLParen:
			depth++
		case token.TRParen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (p *extractor) lastCode(from, last int) int {
	for i := last; i >= from; i-- {
		if p.toks[i].IsCode() {
			return i
		}
	}
	return -1
}

// parseGroup reads elements until the matching ')'. Three numeric
// words make a vector; anything else is an ordered list whose
// elements may be scalars, nested groups or brace blocks.
func (p *extractor) parseGroup(i int) (*ir.Value, int) {
	var elems []*ir.Value
	wordsOnly := true
	for {
		ci := p.nextCode(i)
		if ci == -1 {
			i = len(p.toks)
			break
		}
		t := &p.toks[ci]
		switch t.Type {
		case token.TRParen:
			i = ci + 1
			goto done
		case token.TLBrace:
			sub, next := p.parseMap(ci+1, false)
			elems = append(elems, sub)
			wordsOnly = false
			i = next
		case token.TLParen:
			sub, next := p.parseGroup(ci + 1)
			elems = append(elems, sub)
			wordsOnly = false
			i = next
		case token.TWord, token.TString:
			elems = append(elems, ir.Scalar(t.Text()))
			i = ci + 1
		default:
			// stray ';' or '}' inside a group
			i = ci + 1
		}
	}
done:
	if wordsOnly && len(elems) == 3 {
		nums := make([]float64, 3)
		numeric := true
		for j, e := range elems {
			f, err := strconv.ParseFloat(e.Scalar, 64)
			if err != nil {
				numeric = false
				break
			}
			nums[j] = f
		}
		if numeric {
			return ir.Vector(nums[0], nums[1], nums[2]), i
		}
	}
	return &ir.Value{Type: ir.ListType, Elems: elems}, i
}
