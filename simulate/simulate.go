// Package simulate recognizes a token sequence against an nfa.NFA or a
// dfa.DFA, per spec.md §4.8.
package simulate

import (
	"github.com/coregx/rexfsm/dfa"
	"github.com/coregx/rexfsm/nfa"
	"github.com/coregx/rexfsm/token"
)

// symbolOf renders the decoded input token as the exact symbol string a
// transition label must match: the empty string for Epsilon (it never
// consumes input so it never reaches here), and the decoded literal
// otherwise. Multi-character literals (e.g. "if") only match if the
// caller supplied the whole keyword as one token, per spec.md §4.8.
func symbolOf(t token.Token) string {
	return t.Literal
}

// NFA simulates tokens against n: current starts as ε-closure({start}),
// and each token moves current to ε-closure(move(current, symbol)),
// rejecting the moment current goes empty. Accept iff the final current
// set intersects the accept state.
func NFA(n *nfa.NFA, tokens []token.Token) bool {
	current := n.EpsilonClosure([]nfa.StateID{n.Start()})
	for _, t := range tokens {
		if len(current) == 0 {
			return false
		}
		moved := n.Move(current, symbolOf(t))
		current = n.EpsilonClosure(moved)
	}
	return n.HasAccept(current)
}

// DFA simulates tokens against d by following the labeled transition for
// each token; a missing transition rejects immediately. Accept iff the
// final state is accepting.
func DFA(d *dfa.DFA, tokens []token.Token) bool {
	cur := d.Start()
	for _, t := range tokens {
		next, ok := d.State(cur).Transition(symbolOf(t))
		if !ok {
			return false
		}
		cur = next
	}
	return d.State(cur).IsAccept()
}
