package graph_test

import (
	"testing"

	"github.com/coregx/rexfsm/dfa"
	"github.com/coregx/rexfsm/graph"
	"github.com/coregx/rexfsm/nfa"
	"github.com/coregx/rexfsm/shuntingyard"
	"github.com/coregx/rexfsm/token"
	"github.com/coregx/rexfsm/tree"
)

func compile(t *testing.T, src string) (tree.Node, *nfa.NFA, *dfa.DFA) {
	t.Helper()
	toks, err := token.Tokenize(src, nil)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", src, err)
	}
	toks = token.InsertConcat(toks)
	postfix, err := shuntingyard.ToPostfix(toks)
	if err != nil {
		t.Fatalf("postfix(%q): %v", src, err)
	}
	root, err := tree.Build(postfix)
	if err != nil {
		t.Fatalf("tree.Build(%q): %v", src, err)
	}
	n, err := nfa.NewBuilder().Build(root)
	if err != nil {
		t.Fatalf("nfa.Build(%q): %v", src, err)
	}
	return root, n, dfa.FromNFA(n)
}

func TestFromTree_OneNodePerTreeNode(t *testing.T) {
	root, _, _ := compile(t, "a|b")
	g := graph.FromTree(root)
	// Union root + two literal leaves.
	if len(g.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(g.Nodes))
	}
	if len(g.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(g.Edges))
	}
}

func TestFromNFA_HasStartMarkerAndAcceptShape(t *testing.T) {
	_, n, _ := compile(t, "a")
	g := graph.FromNFA(n)

	var sawStart, sawAccept bool
	for _, e := range g.Edges {
		if e.From == "n_start" {
			sawStart = true
		}
	}
	for _, nd := range g.Nodes {
		if nd.Shape == graph.ShapeDoubleCircle {
			sawAccept = true
		}
	}
	if !sawStart {
		t.Error("expected a start marker edge")
	}
	if !sawAccept {
		t.Error("expected at least one accept-shaped node")
	}
}

func TestFromDFA_DeterministicEdgesPerState(t *testing.T) {
	_, _, d := compile(t, "a(b|c)*")
	g := graph.FromDFA(d)

	seen := map[string]map[string]bool{}
	for _, e := range g.Edges {
		if e.From == "d_start" {
			continue
		}
		if seen[e.From] == nil {
			seen[e.From] = map[string]bool{}
		}
		if seen[e.From][e.Label] {
			t.Fatalf("state %s has duplicate exported edge labeled %q", e.From, e.Label)
		}
		seen[e.From][e.Label] = true
	}
}
