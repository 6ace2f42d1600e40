// Package tree builds an immutable syntax tree from a postfix token
// sequence, per spec.md §4.4. Trees are never mutated after construction.
package tree

import (
	"fmt"

	"github.com/coregx/rexfsm/token"
)

// Kind identifies the operator (or leaf variant) a Node carries. Plus and
// Question are named here because spec.md §3 describes the tree as able to
// carry them in general, but token.Tokenize always rewrites A+/A? away
// before Shunting-Yard runs (see SPEC_FULL.md §4.1), so Build never
// actually produces a Plus or Question node.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindEpsilon
	KindConcat
	KindUnion
	KindStar
	KindPlus
	KindQuestion
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindEpsilon:
		return "Epsilon"
	case KindConcat:
		return "Concat"
	case KindUnion:
		return "Union"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindQuestion:
		return "Question"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is either a leaf (Literal/Epsilon) or an internal node carrying one
// child (unary: Star) or two (binary: Concat, Union).
type Node interface {
	Kind() Kind
}

// Leaf is a Literal or Epsilon operand.
type Leaf struct {
	kind    Kind // KindLiteral or KindEpsilon
	Literal string
}

func (l *Leaf) Kind() Kind { return l.kind }

// Unary is a single-child internal node (Star).
type Unary struct {
	kind  Kind
	Child Node
}

func (u *Unary) Kind() Kind { return u.kind }

// Binary is a two-child internal node (Concat, Union). Left and Right
// preserve operand order — binary operators in this grammar are left
// associative, so postfix decoding pops Right before Left.
type Binary struct {
	kind        Kind
	Left, Right Node
}

func (b *Binary) Kind() Kind { return b.kind }

// kindFromToken maps a postfix operator token to its tree Kind. Operand
// tokens (Literal, Epsilon) are not handled here — Build pushes leaves for
// those directly.
func kindFromToken(k token.Kind) (Kind, bool) {
	switch k {
	case token.Concat:
		return KindConcat, true
	case token.Union:
		return KindUnion, true
	case token.Star:
		return KindStar, true
	case token.Plus:
		return KindPlus, true
	case token.Question:
		return KindQuestion, true
	default:
		return 0, false
	}
}
