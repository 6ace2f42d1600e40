package graph

import (
	"strconv"

	"github.com/coregx/rexfsm/dfa"
)

// FromDFA exports d: one Node per state (ShapeDoubleCircle for accepting
// states), one Edge per transition, and a synthetic ShapePoint entry node
// pointing at the start state. It serves both a raw subset-construction
// DFA and a Minimize result — both are *dfa.DFA, so one converter covers
// either graph in SPEC_FULL.md's pipeline output.
func FromDFA(d *dfa.DFA) *Graph {
	g := &Graph{}

	id := func(s dfa.StateID) string { return "d" + strconv.FormatUint(uint64(s), 10) }

	for i := 0; i < d.NumStates(); i++ {
		s := d.State(dfa.StateID(i))
		shape := ShapeCircle
		if s.IsAccept() {
			shape = ShapeDoubleCircle
		}
		g.Nodes = append(g.Nodes, Node{ID: id(s.ID()), Shape: shape, Label: s.Label()})

		for _, sym := range s.Symbols() {
			dst, _ := s.Transition(sym)
			g.Edges = append(g.Edges, Edge{From: id(s.ID()), To: id(dst), Label: sym})
		}
	}

	g.Nodes = append(g.Nodes, Node{ID: "d_start", Shape: ShapePoint})
	g.Edges = append(g.Edges, Edge{From: "d_start", To: id(d.Start())})

	return g
}
