package nfa

import (
	"sort"

	"github.com/coregx/rexfsm/internal/conv"
	"github.com/coregx/rexfsm/internal/sparse"
)

// EpsilonClosure computes the smallest superset of set closed under
// epsilon-transitions, by worklist over the epsilon-edge relation, per
// spec.md §4.6. The result is sorted for reproducible canonicalization by
// package dfa.
func (n *NFA) EpsilonClosure(set []StateID) []StateID {
	seen := sparse.NewSparseSet(conv.IntToUint32(len(n.states)))
	var worklist []StateID

	for _, s := range set {
		if !seen.Contains(uint32(s)) {
			seen.Insert(uint32(s))
			worklist = append(worklist, s)
		}
	}

	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, dst := range n.states[s].eps {
			if !seen.Contains(uint32(dst)) {
				seen.Insert(uint32(dst))
				worklist = append(worklist, dst)
			}
		}
	}

	out := make([]StateID, 0, seen.Size())
	seen.Iter(func(v uint32) { out = append(out, StateID(v)) })
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Move returns the union of symbol-labeled destinations from every state
// in set, per spec.md §4.6. An empty result means no transition exists
// for symbol from any state in set.
func (n *NFA) Move(set []StateID, symbol string) []StateID {
	seen := map[StateID]struct{}{}
	var out []StateID
	for _, s := range set {
		for _, dst := range n.states[s].trans[symbol] {
			if _, ok := seen[dst]; !ok {
				seen[dst] = struct{}{}
				out = append(out, dst)
			}
		}
	}
	return out
}

// HasAccept reports whether set intersects the NFA's accept state.
func (n *NFA) HasAccept(set []StateID) bool {
	for _, s := range set {
		if n.IsAccept(s) {
			return true
		}
	}
	return false
}
