package pipeline_test

import (
	"errors"
	"testing"

	"github.com/coregx/rexfsm/pipeline"
)

func TestRun_AcceptanceScenarios(t *testing.T) {
	cfg := pipeline.Config{Keywords: []string{"if", "else", "while", "for"}}

	cases := []struct {
		regex  string
		word   string
		accept bool
	}{
		{"a(b|c)*", "a", true},
		{"a(b|c)*", "abbcbc", true},
		{"a(b|c)*", "b", false},
		{"a(b|c)*", "", false},
		{"a?", "", true},
		{"a?", "a", true},
		{"a?", "aa", false},
		{"a+", "", false},
		{"a+", "a", true},
		{"a+", "aaaa", true},
		{"a*", "", true},
		{"ε", "", true},
		{"ε", "a", false},
		{"if", "if", true},
		{"if", "", false},
		{"(a|b)*abb", "abababb", true},
		{"(a|b)*abb", "abab", false},
		{"[abc]+", "abcabc", true},
	}

	for _, c := range cases {
		res, err := pipeline.Run(cfg, c.regex, c.word)
		if err != nil {
			t.Fatalf("Run(%q, %q): %v", c.regex, c.word, err)
		}
		if res.AcceptNFA != c.accept {
			t.Errorf("Run(%q, %q).AcceptNFA = %v, want %v", c.regex, c.word, res.AcceptNFA, c.accept)
		}
		if res.AcceptDFA != c.accept || res.AcceptMinDFA != c.accept {
			t.Errorf("Run(%q, %q) disagreement: dfa=%v mindfa=%v want=%v",
				c.regex, c.word, res.AcceptDFA, res.AcceptMinDFA, c.accept)
		}
	}
}

func TestRun_AcceptanceScenarios_KeywordCombinedWithGroup(t *testing.T) {
	// "if" stands alone as its own run with nothing else adjacent, so
	// TokenizeWord recognizes it as the reserved keyword; the (a|b)?
	// group is satisfied by its epsilon branch.
	cfg := pipeline.Config{Keywords: []string{"if", "a"}}
	res, err := pipeline.Run(cfg, "if(a|b)?", "if")
	if err != nil {
		t.Fatalf("Run(if(a|b)?, %q): %v", "if", err)
	}
	if !res.AcceptNFA || !res.AcceptDFA || !res.AcceptMinDFA {
		t.Errorf("Run(if(a|b)?, %q) = nfa=%v dfa=%v mindfa=%v, want all true",
			"if", res.AcceptNFA, res.AcceptDFA, res.AcceptMinDFA)
	}
}

func TestRun_GraphsArePopulated(t *testing.T) {
	res, err := pipeline.Run(pipeline.Config{}, "a(b|c)*", "abc")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.TreeGraph.Nodes) == 0 || len(res.NFAGraph.Nodes) == 0 || len(res.DFAGraph.Nodes) == 0 || len(res.MinDFAGraph.Nodes) == 0 {
		t.Error("expected every graph export to have at least one node")
	}
}

func TestRun_PropagatesShuntingYardErrors(t *testing.T) {
	_, err := pipeline.Run(pipeline.Config{}, "a(", "a")
	if err == nil {
		t.Fatal("expected an error for an unbalanced paren")
	}
}

func TestRun_NeverReturnsAcceptanceDisagreementForValidInput(t *testing.T) {
	_, err := pipeline.Run(pipeline.Config{}, "(a|b)*", "aabb")
	if errors.Is(err, pipeline.ErrAcceptanceDisagreement) {
		t.Fatal("unexpected acceptance disagreement on a correctly built automaton")
	}
}
