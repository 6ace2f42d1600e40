package graph

import (
	"fmt"
	"strconv"

	"github.com/coregx/rexfsm/tree"
)

// FromTree walks root and produces one Node per tree.Node (shape
// ShapeCircle throughout; syntax trees have no notion of "accepting"
// node) and one Edge per parent-child link, labeled "L"/"R" for a
// Binary's operands so a renderer can tell them apart without relying on
// drawing order.
func FromTree(root tree.Node) *Graph {
	g := &Graph{}
	next := 0
	newID := func() string {
		id := "t" + strconv.Itoa(next)
		next++
		return id
	}

	var walk func(n tree.Node) string
	walk = func(n tree.Node) string {
		id := newID()
		switch v := n.(type) {
		case *tree.Leaf:
			label := v.Literal
			if v.Kind() == tree.KindEpsilon {
				label = "ε"
			}
			g.Nodes = append(g.Nodes, Node{ID: id, Shape: ShapeCircle, Label: label})
		case *tree.Unary:
			g.Nodes = append(g.Nodes, Node{ID: id, Shape: ShapeCircle, Label: v.Kind().String()})
			child := walk(v.Child)
			g.Edges = append(g.Edges, Edge{From: id, To: child})
		case *tree.Binary:
			g.Nodes = append(g.Nodes, Node{ID: id, Shape: ShapeCircle, Label: v.Kind().String()})
			left := walk(v.Left)
			right := walk(v.Right)
			g.Edges = append(g.Edges, Edge{From: id, To: left, Label: "L"})
			g.Edges = append(g.Edges, Edge{From: id, To: right, Label: "R"})
		default:
			g.Nodes = append(g.Nodes, Node{ID: id, Shape: ShapeCircle, Label: fmt.Sprintf("%v", n.Kind())})
		}
		return id
	}

	walk(root)
	return g
}
