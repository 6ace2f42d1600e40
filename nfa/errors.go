package nfa

import (
	"errors"
	"fmt"

	"github.com/coregx/rexfsm/tree"
)

// ErrUnsupportedOperator is returned when the tree contains an operator
// kind the Thompson builder does not implement a construction rule for.
var ErrUnsupportedOperator = errors.New("unsupported operator")

// BuildError wraps a Thompson-construction failure with the tree node
// kind that triggered it, following the same sentinel-plus-context shape
// as the teacher's nfa.BuildError in the example pack.
type BuildError struct {
	NodeKind tree.Kind
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa build: %s: %v", e.NodeKind, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
