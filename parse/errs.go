package parse

import (
	"errors"
	"fmt"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/token"
)

var ErrParse = errors.New("parse error")

// ErrImbalanced reports an unmatched brace or paren with the token
// positions involved, so a failed load can say where it failed.
type ErrImbalanced struct {
	Open, Close *token.Token
}

func (e *ErrImbalanced) Unwrap() error {
	return ir.ErrStructure
}

func (e *ErrImbalanced) Error() string {
	if e.Open == nil {
		return fmt.Sprintf("%s: unexpected %q at %s",
			ir.ErrStructure, e.Close.Bytes, e.Close.Pos)
	}
	if e.Close == nil {
		return fmt.Sprintf("%s: unmatched %q at %s",
			ir.ErrStructure, e.Open.Bytes, e.Open.Pos)
	}
	return fmt.Sprintf("%s: %q at %s closed by %q at %s",
		ir.ErrStructure, e.Open.Bytes, e.Open.Pos, e.Close.Bytes, e.Close.Pos)
}

// Check validates structural well-formedness of a token stream:
// terminated comments/strings and balanced braces and parens. It is
// the load-time gate; a stream that fails Check never reaches the
// extractor.
func Check(toks []token.Token, truncated bool) error {
	if truncated {
		return fmt.Errorf("%w: %w", ErrParse, token.ErrTruncated)
	}
	var stack []*token.Token
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case token.TLBrace, token.TLParen:
			stack = append(stack, t)
		case token.TRBrace, token.TRParen:
			if len(stack) == 0 {
				return &ErrImbalanced{Close: t}
			}
			open := stack[len(stack)-1]
			if (t.Type == token.TRBrace) != (open.Type == token.TLBrace) {
				return &ErrImbalanced{Open: open, Close: t}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return &ErrImbalanced{Open: stack[len(stack)-1]}
	}
	return nil
}
