package ir

import "errors"

var (
	// ErrStructure covers unbalanced braces and parens: a block end
	// search that cannot complete.
	ErrStructure = errors.New("structural error")
	// ErrRoute covers routes whose segments cannot be parsed or
	// resolved.
	ErrRoute = errors.New("route error")
	// ErrIndex covers list indexes out of bounds.
	ErrIndex = errors.New("index out of bounds")
)
