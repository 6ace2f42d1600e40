package graph

import (
	"strconv"

	"github.com/coregx/rexfsm/nfa"
)

// FromNFA exports n: one Node per state (ShapeDoubleCircle for the accept
// state, ShapeCircle otherwise), one Edge per labeled transition, and one
// Edge labeled "ε" per epsilon transition. A synthetic ShapePoint node with
// a single unlabeled edge into the start state marks the entry point, the
// convention Graphviz renderers use for a "start arrow" with no real
// predecessor state.
func FromNFA(n *nfa.NFA) *Graph {
	g := &Graph{}

	id := func(s nfa.StateID) string { return "n" + strconv.FormatUint(uint64(s), 10) }

	for i := 0; i < n.NumStates(); i++ {
		s := n.State(nfa.StateID(i))
		shape := ShapeCircle
		if n.IsAccept(s.ID()) {
			shape = ShapeDoubleCircle
		}
		g.Nodes = append(g.Nodes, Node{ID: id(s.ID()), Shape: shape, Label: strconv.FormatUint(uint64(s.ID()), 10)})

		for _, sym := range s.Symbols() {
			for _, dst := range s.Transitions(sym) {
				g.Edges = append(g.Edges, Edge{From: id(s.ID()), To: id(dst), Label: sym})
			}
		}
		for _, dst := range s.EpsilonTransitions() {
			g.Edges = append(g.Edges, Edge{From: id(s.ID()), To: id(dst), Label: "ε"})
		}
	}

	g.Nodes = append(g.Nodes, Node{ID: "n_start", Shape: ShapePoint})
	g.Edges = append(g.Edges, Edge{From: "n_start", To: id(n.Start())})

	return g
}
