package token

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for the tokenizer stage. Every failure reported by
// Tokenize is, or wraps, exactly one of these (ErrMissingOperand is
// returned bare, the others inside a *CompileError); callers should
// compare with errors.Is rather than inspecting *CompileError.Err directly.
var (
	// ErrMalformedClass is returned for an empty or unclosed [...] class.
	ErrMalformedClass = errors.New("malformed character class")

	// ErrIncompleteEscape is returned for a trailing '\' with no following
	// character.
	ErrIncompleteEscape = errors.New("incomplete escape sequence")

	// ErrMissingOperand is returned when + or ? has no preceding operand
	// or group to expand.
	ErrMissingOperand = errors.New("operator has no preceding operand")

	// ErrUnrecognizedToken is returned for a character outside the
	// accepted alphabet that is not a metacharacter.
	ErrUnrecognizedToken = errors.New("unrecognized token")
)

// CompileError wraps a tokenizer failure with the input and byte offset
// that triggered it, following the same wrap-a-sentinel shape as the
// teacher's nfa.CompileError.
type CompileError struct {
	Input  string
	Offset int
	Err    error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("tokenize %q at offset %d: %v", e.Input, e.Offset, e.Err)
}

// Unwrap returns the wrapped sentinel so errors.Is(err, ErrMalformedClass)
// etc. keep working through the wrapper.
func (e *CompileError) Unwrap() error {
	return e.Err
}
