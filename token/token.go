package token

import "fmt"

type Type int

const (
	TWord Type = iota
	TString
	TLBrace
	TRBrace
	TLParen
	TRParen
	TSemi
	TLineComment
	TBlockComment
	TSpace
	TNewline
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TWord:         "Word",
		TString:       "String",
		TLBrace:       "LBrace",
		TRBrace:       "RBrace",
		TLParen:       "LParen",
		TRParen:       "RParen",
		TSemi:         "Semi",
		TLineComment:  "LineComment",
		TBlockComment: "BlockComment",
		TSpace:        "Space",
		TNewline:      "Newline",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Token is one lexical unit of a foam dictionary. Bytes is a slice of
// the original input, so concatenating Bytes over a token stream
// reproduces the input exactly.
type Token struct {
	Type  Type
	Bytes []byte
	Pos   *Pos
}

func (t *Token) Text() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q", t.Type, t.Bytes)
}

// IsCode reports whether t carries structure, as opposed to
// whitespace or comments.
func (t *Token) IsCode() bool {
	switch t.Type {
	case TSpace, TNewline, TLineComment, TBlockComment:
		return false
	default:
		return true
	}
}
