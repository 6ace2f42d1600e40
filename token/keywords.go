package token

import "github.com/coregx/ahocorasick"

// DefaultKeywords is the reserved multi-letter literal set from spec.md
// §4.1's example ("if", "else", "while", "for"). Callers needing a
// different set build their own with NewKeywordSet.
func DefaultKeywords() []string {
	return []string{"if", "else", "while", "for"}
}

// KeywordSet recognizes whether a maximal run of letter characters is one
// of a fixed set of reserved multi-letter literals. It is backed by an
// Aho-Corasick automaton — the same multi-pattern matcher the teacher uses
// in meta.Compile for literal-alternation search — rather than a linear
// scan-and-compare loop, since "is this run one of N fixed words" is
// exactly the problem Aho-Corasick solves.
type KeywordSet struct {
	words []string
	auto  *ahocorasick.Automaton
}

// NewKeywordSet builds a KeywordSet over words. An empty set is valid and
// never matches.
func NewKeywordSet(words ...string) (*KeywordSet, error) {
	if len(words) == 0 {
		return &KeywordSet{}, nil
	}
	builder := ahocorasick.NewBuilder()
	for _, w := range words {
		builder.AddPattern([]byte(w))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &KeywordSet{words: words, auto: auto}, nil
}

// Match reports whether run, taken as a whole, is one of the set's
// reserved literals. Tokenize only calls this with maximal runs of letter
// characters, so a match must span the entire run — "iffy" is not "if"
// followed by "fy".
func (k *KeywordSet) Match(run string) bool {
	if k == nil || k.auto == nil || run == "" {
		return false
	}
	data := []byte(run)
	for at := 0; at <= len(data); {
		m := k.auto.Find(data, at)
		if m == nil {
			return false
		}
		if m.Start == 0 && m.End == len(data) {
			return true
		}
		at = m.Start + 1
	}
	return false
}

// Words returns the reserved literals in k, in the order they were added.
func (k *KeywordSet) Words() []string {
	return k.words
}
