// Package dfa implements the subset construction (determinization) of an
// nfa.NFA and Hopcroft-style partition-refinement minimization of the
// result, per spec.md §4.6 and §4.7.
package dfa

import "sort"

// StateID uniquely identifies a DFA state within one construction.
type StateID uint32

// State is one DFA state: its transition table (total on the alphabet
// derived during that construction; a missing entry means "dead, no
// transition"), an accept flag, and a label describing which NFA subset
// (or, after Minimize, which set of DFA states) it canonicalizes.
type State struct {
	id       StateID
	trans    map[string]StateID
	isAccept bool
	label    string
}

// ID returns the state's identifier.
func (s *State) ID() StateID { return s.id }

// IsAccept reports whether s is an accepting state.
func (s *State) IsAccept() bool { return s.isAccept }

// Label returns a diagnostic label for s: the sorted NFA state-id set it
// was canonicalized from (subset construction), or the sorted DFA
// state-id set it collapsed from (minimization).
func (s *State) Label() string { return s.label }

// Transition returns the destination for symbol and whether one exists.
func (s *State) Transition(symbol string) (StateID, bool) {
	id, ok := s.trans[symbol]
	return id, ok
}

// Symbols returns the symbols s has an outgoing transition for, sorted.
func (s *State) Symbols() []string {
	out := make([]string, 0, len(s.trans))
	for sym := range s.trans {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// DFA is a deterministic finite automaton: a dense arena of States, one
// start state, and (per spec.md §4.6's invariant) at most one state per
// distinct canonical subset/partition-block.
type DFA struct {
	states []State
	start  StateID
}

// Start returns the DFA's start state.
func (d *DFA) Start() StateID { return d.start }

// State returns the state with the given id.
func (d *DFA) State(id StateID) *State { return &d.states[id] }

// NumStates returns the number of states in the DFA.
func (d *DFA) NumStates() int { return len(d.states) }
