// Package shuntingyard converts an infix token sequence (with explicit
// concatenation already inserted by package token) into postfix (RPN)
// order, using the classic Shunting-Yard algorithm.
package shuntingyard

import (
	"errors"
	"fmt"

	"github.com/coregx/rexfsm/token"
)

// ErrUnmatchedParen is returned when parentheses do not balance, either
// because a ')' has no matching '(' or an operator stack still holds a '('
// once the input is exhausted.
var ErrUnmatchedParen = errors.New("unmatched parenthesis")

// CompileError wraps a Shunting-Yard failure, following the same
// sentinel-plus-wrapper shape as package token's CompileError.
type CompileError struct {
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shunting-yard: %v", e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// precedence gives the binding strength of each operator, per spec.md
// §3's table: "* + ? > · > |". Plus and Question never reach this stage
// (package token expands them away) but are given entries for
// completeness/robustness against a caller-supplied token list.
func precedence(k token.Kind) int {
	switch k {
	case token.Star, token.Plus, token.Question:
		return 3
	case token.Concat:
		return 2
	case token.Union:
		return 1
	default:
		return 0
	}
}

// isLeftAssocBinary reports whether k is a binary operator that associates
// left-to-right — both Concat and Union do.
func isLeftAssocBinary(k token.Kind) bool {
	return k == token.Concat || k == token.Union
}

// ToPostfix converts infix to postfix using the classic Shunting-Yard
// algorithm, per spec.md §4.3.
func ToPostfix(infix []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(infix))
	var stack []token.Token

	for _, t := range infix {
		switch {
		case t.IsOperand():
			output = append(output, t)

		case t.Kind == token.LParen:
			stack = append(stack, t)

		case t.Kind == token.RParen:
			found := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == token.LParen {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return nil, &CompileError{Err: ErrUnmatchedParen}
			}

		default: // operator: Union, Concat, Star, Plus, Question
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == token.LParen {
					break
				}
				topPrec, opPrec := precedence(top.Kind), precedence(t.Kind)
				if topPrec > opPrec || (topPrec == opPrec && isLeftAssocBinary(t.Kind)) {
					stack = stack[:len(stack)-1]
					output = append(output, top)
					continue
				}
				break
			}
			stack = append(stack, t)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == token.LParen || top.Kind == token.RParen {
			return nil, &CompileError{Err: ErrUnmatchedParen}
		}
		output = append(output, top)
	}

	return output, nil
}
