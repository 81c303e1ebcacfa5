package token

// Tokenize lexes a foam dictionary into a flat token stream. The
// stream is lossless: concatenating token bytes in order reproduces
// src exactly. Tokenize never fails; an unterminated block comment or
// quoted string consumes the rest of the input and the second return
// value reports the stream truncated so a structural check can point
// at the failure later.
func Tokenize(dst []Token, src []byte) ([]Token, *Doc, bool) {
	var (
		i, n      int
		c         byte
		truncated bool
	)
	doc := newDoc(src)
	d := doc.d
	n = len(d)

	for i < n {
		c = d[i]

		if c == '/' && i+1 < n {
			switch d[i+1] {
			case '/':
				j := lineComment(d, i)
				dst = append(dst, Token{
					Type:  TLineComment,
					Bytes: d[i:j],
					Pos:   doc.Pos(i),
				})
				i = j
				continue
			case '*':
				j, ok := blockComment(d, i)
				if !ok {
					truncated = true
				}
				dst = append(dst, Token{
					Type:  TBlockComment,
					Bytes: d[i:j],
					Pos:   doc.Pos(i),
				})
				i = j
				continue
			}
		}

		if c == '\n' {
			dst = append(dst, Token{
				Type:  TNewline,
				Bytes: d[i : i+1],
				Pos:   doc.Pos(i),
			})
			i++
			continue
		}

		if isSpace(c) {
			j := i
			for j < n && isSpace(d[j]) && d[j] != '\n' {
				j++
			}
			dst = append(dst, Token{
				Type:  TSpace,
				Bytes: d[i:j],
				Pos:   doc.Pos(i),
			})
			i = j
			continue
		}

		switch c {
		case '{', '}', '(', ')', ';':
			dst = append(dst, Token{
				Type:  symType(c),
				Bytes: d[i : i+1],
				Pos:   doc.Pos(i),
			})
			i++
			continue
		case '"':
			j, ok := quoted(d, i)
			if !ok {
				truncated = true
			}
			dst = append(dst, Token{
				Type:  TString,
				Bytes: d[i:j],
				Pos:   doc.Pos(i),
			})
			i = j
			continue
		}

		j := word(d, i)
		dst = append(dst, Token{
			Type:  TWord,
			Bytes: d[i:j],
			Pos:   doc.Pos(i),
		})
		i = j
	}
	return dst, doc, truncated
}

func symType(c byte) Type {
	switch c {
	case '{':
		return TLBrace
	case '}':
		return TRBrace
	case '(':
		return TLParen
	case ')':
		return TRParen
	default:
		return TSemi
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f', '\n':
		return true
	}
	return false
}

func lineComment(d []byte, start int) int {
	i := start + 2
	for i < len(d) && d[i] != '\n' {
		i++
	}
	return i
}

func blockComment(d []byte, start int) (int, bool) {
	i := start + 2
	for i < len(d)-1 {
		if d[i] == '*' && d[i+1] == '/' {
			return i + 2, true
		}
		i++
	}
	return len(d), false
}

func quoted(d []byte, start int) (int, bool) {
	i := start + 1
	for i < len(d) {
		if d[i] == '"' {
			return i + 1, true
		}
		i++
	}
	return len(d), false
}

// word runs until whitespace or a structural symbol. A '/' inside a
// word does not start a comment, so literals like file paths survive.
func word(d []byte, start int) int {
	i := start
	for i < len(d) {
		c := d[i]
		if isSpace(c) {
			break
		}
		switch c {
		case '{', '}', '(', ')', ';', '"':
			return i
		}
		i++
	}
	return i
}
