package token

import "errors"

var (
	ErrUnterminated = errors.New("unterminated")
	ErrTruncated    = errors.New("token stream truncated")
)
