package tree

import (
	"errors"
	"fmt"
)

// ErrMalformedPostfix is returned when the postfix-to-tree fold leaves the
// operand stack in a non-singleton state, or an operator has too few
// operands to pop.
var ErrMalformedPostfix = errors.New("malformed postfix sequence")

// CompileError wraps a tree-build failure.
type CompileError struct {
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("tree build: %v", e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
