package token_test

import (
	"testing"

	"github.com/coregx/rexfsm/token"
)

func TestTokenizeWord_Epsilon(t *testing.T) {
	toks, err := token.TokenizeWord("ε", nil)
	if err != nil {
		t.Fatalf("TokenizeWord: %v", err)
	}
	if len(toks) != 0 {
		t.Fatalf("expected empty token sequence, got %+v", toks)
	}
}

func TestTokenizeWord_PlainLiteralsSplitPerCharacter(t *testing.T) {
	toks, err := token.TokenizeWord("abc", nil)
	if err != nil {
		t.Fatalf("TokenizeWord: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %+v", toks)
	}
	for i, want := range []string{"a", "b", "c"} {
		if toks[i].Literal != want {
			t.Errorf("token %d = %q, want %q", i, toks[i].Literal, want)
		}
	}
}

func TestTokenizeWord_KeywordRecognizedWhole(t *testing.T) {
	kw, err := token.NewKeywordSet("if")
	if err != nil {
		t.Fatalf("NewKeywordSet: %v", err)
	}
	toks, err := token.TokenizeWord("if", kw)
	if err != nil {
		t.Fatalf("TokenizeWord: %v", err)
	}
	if len(toks) != 1 || toks[0].Literal != "if" {
		t.Fatalf("expected single keyword token, got %+v", toks)
	}
}

func TestTokenizeWord_MetacharactersAreLiteral(t *testing.T) {
	toks, err := token.TokenizeWord("(a|b)*", nil)
	if err != nil {
		t.Fatalf("TokenizeWord: %v", err)
	}
	want := []string{"(", "a", "|", "b", ")", "*"}
	if len(toks) != len(want) {
		t.Fatalf("got %+v", toks)
	}
	for i, w := range want {
		if toks[i].Kind != token.Literal || toks[i].Literal != w {
			t.Errorf("token %d = %+v, want Literal %q", i, toks[i], w)
		}
	}
}

func TestTokenizeWord_EscapeDecoding(t *testing.T) {
	toks, err := token.TokenizeWord(`a\n`, nil)
	if err != nil {
		t.Fatalf("TokenizeWord: %v", err)
	}
	if len(toks) != 2 || toks[1].Literal != "\n" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeWord_IncompleteEscape(t *testing.T) {
	if _, err := token.TokenizeWord(`a\`, nil); err == nil {
		t.Fatal("expected an error for a trailing backslash")
	}
}
