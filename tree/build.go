package tree

import "github.com/coregx/rexfsm/token"

// Build folds a postfix token sequence into a syntax tree, per spec.md
// §4.4: operands push a leaf, a unary operator pops one subtree, a binary
// operator pops two (right then left). The final stack must hold exactly
// one node.
func Build(postfix []token.Token) (Node, error) {
	var stack []Node

	for _, t := range postfix {
		switch {
		case t.Kind == token.Literal:
			stack = append(stack, &Leaf{kind: KindLiteral, Literal: t.Literal})

		case t.Kind == token.Epsilon:
			stack = append(stack, &Leaf{kind: KindEpsilon})

		case t.Kind == token.Star || t.Kind == token.Plus || t.Kind == token.Question:
			k, _ := kindFromToken(t.Kind)
			if len(stack) < 1 {
				return nil, &CompileError{Err: ErrMalformedPostfix}
			}
			child := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack = append(stack, &Unary{kind: k, Child: child})

		case t.Kind == token.Concat || t.Kind == token.Union:
			k, _ := kindFromToken(t.Kind)
			if len(stack) < 2 {
				return nil, &CompileError{Err: ErrMalformedPostfix}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &Binary{kind: k, Left: left, Right: right})

		default:
			return nil, &CompileError{Err: ErrMalformedPostfix}
		}
	}

	if len(stack) != 1 {
		return nil, &CompileError{Err: ErrMalformedPostfix}
	}
	return stack[0], nil
}
