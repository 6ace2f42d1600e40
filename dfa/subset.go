package dfa

import (
	"strconv"
	"strings"

	"github.com/coregx/rexfsm/nfa"
)

// subsetKey canonicalizes an NFA subset by its sorted membership, per
// spec.md §9: "never compare by reference identity of the carrier
// object". subset must already be sorted (nfa.EpsilonClosure guarantees
// this).
func subsetKey(subset []nfa.StateID) string {
	var b strings.Builder
	for i, id := range subset {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}

// FromNFA builds a DFA from n via the subset construction, per spec.md
// §4.6: the initial DFA state is ε-closure({start}); for each unvisited
// DFA state and each alphabet symbol, ε-closure(move(D, a)) becomes a new
// DFA state (or is matched to an existing one by canonical subset key) and
// a transition is registered. Empty move results leave no transition
// (implicit dead state). A DFA state accepts iff its NFA subset contains
// the NFA's accept state.
func FromNFA(n *nfa.NFA) *DFA {
	alphabet := n.Alphabet()

	byKey := map[string]StateID{}
	var subsets [][]nfa.StateID
	var states []State

	register := func(subset []nfa.StateID) StateID {
		key := subsetKey(subset)
		if id, ok := byKey[key]; ok {
			return id
		}
		id := StateID(len(states))
		byKey[key] = id
		subsets = append(subsets, subset)
		states = append(states, State{
			id:       id,
			trans:    map[string]StateID{},
			isAccept: n.HasAccept(subset),
			label:    key,
		})
		return id
	}

	start := register(n.EpsilonClosure([]nfa.StateID{n.Start()}))

	for next := StateID(0); int(next) < len(subsets); next++ {
		subset := subsets[next]
		for _, symbol := range alphabet {
			moved := n.Move(subset, symbol)
			if len(moved) == 0 {
				continue
			}
			closure := n.EpsilonClosure(moved)
			if len(closure) == 0 {
				continue
			}
			dest := register(closure)
			states[next].trans[symbol] = dest
		}
	}

	return &DFA{states: states, start: start}
}
