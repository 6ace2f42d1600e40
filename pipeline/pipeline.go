// Package pipeline orchestrates the full compile-and-simulate chain
// described in spec.md §2: tokenize, insert concatenation, Shunting-Yard
// to postfix, build the syntax tree, build the Thompson NFA, determinize
// to a DFA, minimize the DFA, then simulate a word against all three
// automata.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/coregx/rexfsm/dfa"
	"github.com/coregx/rexfsm/graph"
	"github.com/coregx/rexfsm/nfa"
	"github.com/coregx/rexfsm/shuntingyard"
	"github.com/coregx/rexfsm/simulate"
	"github.com/coregx/rexfsm/token"
	"github.com/coregx/rexfsm/tree"
)

// ErrAcceptanceDisagreement is an internal-consistency failure: the NFA,
// DFA, and minimized DFA built from the same regex disagreed on whether
// they accept the same word. A correct implementation of subset
// construction and minimization can never produce this; its only purpose
// is to fail loudly instead of silently returning a wrong verdict, the
// same defensive role the teacher's own compilation sentinels play.
var ErrAcceptanceDisagreement = errors.New("nfa/dfa/mindfa acceptance disagreement")

// Config carries the reserved-keyword set every stage of a Run shares.
// Keywords is nil-safe: a nil or empty Config matches no reserved words,
// so every letter run splits into single-character literals.
type Config struct {
	Keywords []string
}

// keywordSet builds a KeywordSet from c.Keywords. Run calls it once per
// call, so the Aho-Corasick automaton is rebuilt for every job even when
// a Config is reused across many Run calls; Run accepts no prebuilt
// KeywordSet, which keeps Run itself stateless.
func (c Config) keywordSet() (*token.KeywordSet, error) {
	return token.NewKeywordSet(c.Keywords...)
}

// Result is everything one compile-and-simulate Run produces: the
// intermediate postfix form, the three compiled automata and their graph
// exports, and the acceptance verdict recomputed independently against
// each of them.
type Result struct {
	Postfix []token.Token

	Tree   tree.Node
	NFA    *nfa.NFA
	DFA    *dfa.DFA
	MinDFA *dfa.DFA

	TreeGraph   *graph.Graph
	NFAGraph    *graph.Graph
	DFAGraph    *graph.Graph
	MinDFAGraph *graph.Graph

	AcceptNFA    bool
	AcceptDFA    bool
	AcceptMinDFA bool
}

// Accepts reports whether the word was accepted — the question a caller
// actually wants answered. Run only returns a Result when the NFA, DFA
// and minimized DFA agree, so this returns the NFA's verdict.
func (r *Result) Accepts() bool {
	return r.AcceptNFA
}

// Run compiles regex through every stage in spec.md §2's order and
// simulates word against the resulting NFA, DFA, and minimized DFA,
// failing with ErrAcceptanceDisagreement if they do not all agree.
func Run(cfg Config, regex, word string) (*Result, error) {
	kw, err := cfg.keywordSet()
	if err != nil {
		return nil, fmt.Errorf("build keyword set: %w", err)
	}

	rawToks, err := token.Tokenize(regex, kw)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	withConcat := token.InsertConcat(rawToks)

	postfix, err := shuntingyard.ToPostfix(withConcat)
	if err != nil {
		return nil, fmt.Errorf("shunting-yard: %w", err)
	}

	root, err := tree.Build(postfix)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}

	n, err := nfa.NewBuilder().Build(root)
	if err != nil {
		return nil, fmt.Errorf("build nfa: %w", err)
	}

	d := dfa.FromNFA(n)
	m := dfa.Minimize(d)

	wordToks, err := token.TokenizeWord(word, kw)
	if err != nil {
		return nil, fmt.Errorf("tokenize word: %w", err)
	}

	acceptNFA := simulate.NFA(n, wordToks)
	acceptDFA := simulate.DFA(d, wordToks)
	acceptMinDFA := simulate.DFA(m, wordToks)

	if acceptNFA != acceptDFA || acceptDFA != acceptMinDFA {
		return nil, fmt.Errorf("%w: regex=%q word=%q nfa=%v dfa=%v mindfa=%v",
			ErrAcceptanceDisagreement, regex, word, acceptNFA, acceptDFA, acceptMinDFA)
	}

	return &Result{
		Postfix:      postfix,
		Tree:         root,
		NFA:          n,
		DFA:          d,
		MinDFA:       m,
		TreeGraph:    graph.FromTree(root),
		NFAGraph:     graph.FromNFA(n),
		DFAGraph:     graph.FromDFA(d),
		MinDFAGraph:  graph.FromDFA(m),
		AcceptNFA:    acceptNFA,
		AcceptDFA:    acceptDFA,
		AcceptMinDFA: acceptMinDFA,
	}, nil
}
