package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// SyntaxError reports where a snapshot stopped being valid JSON, with
// a snippet of the surrounding text and the last object key seen
// before the break.
type SyntaxError struct {
	Msg     string
	Line    int
	Col     int
	Offset  int64
	Near    string
	KeyHint string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json syntax error at line %d, column %d: %s (near %q)",
		e.Line, e.Col, e.Msg, e.Near)
}

var keyRx = regexp.MustCompile(`"([^"]+)"\s*:`)

// Check validates d as JSON.
func Check(d []byte) error {
	var v any
	err := json.Unmarshal(d, &v)
	if err == nil {
		return nil
	}
	var serr *json.SyntaxError
	if !errors.As(err, &serr) {
		return err
	}
	off := serr.Offset
	line, col := 1, 1
	for i := int64(0); i < off && i < int64(len(d)); i++ {
		if d[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	start := off - 30
	if start < 0 {
		start = 0
	}
	end := off + 30
	if end > int64(len(d)) {
		end = int64(len(d))
	}
	se := &SyntaxError{
		Msg:    serr.Error(),
		Line:   line,
		Col:    col,
		Offset: off,
		Near:   string(d[start:end]),
	}
	if ms := keyRx.FindAllSubmatch(d[:off], -1); len(ms) > 0 {
		se.KeyHint = string(ms[len(ms)-1][1])
	}
	return se
}
