package token

import "unicode"

// TokenizeWord converts a batch-job input word w into the token sequence
// used for simulation, reusing the same escape table and reserved-keyword
// recognition as Tokenize so that a regex label like "if" is matched by
// one input token "if", never by the two characters 'i','f' — the
// consistency spec.md §9's "token vs. character model" note requires of
// the caller. Unlike regex source text, a word carries no operators or
// parentheses: every character that is not part of an escape or a
// recognized keyword becomes its own Literal token verbatim, including
// regex metacharacters like '(' or '*' if they happen to appear in the
// word's data. The literal string "ε" (and only that exact string) decodes
// to the empty token sequence, matching Epsilon's meaning as input.
func TokenizeWord(w string, kw *KeywordSet) ([]Token, error) {
	if w == "ε" {
		return nil, nil
	}

	var out []Token
	runes := []rune(w)
	n := len(runes)

	for i := 0; i < n; {
		c := runes[i]
		switch {
		case c == '\\':
			if i+1 >= n {
				return nil, &CompileError{Input: w, Offset: i, Err: ErrIncompleteEscape}
			}
			out = append(out, Token{Kind: Literal, Literal: decodeEscape(byte(runes[i+1]))})
			i += 2

		case unicode.IsLetter(c):
			run, consumed := scanLetterRun(runes[i:])
			if kw != nil && kw.Match(run) {
				out = append(out, Token{Kind: Literal, Literal: run})
			} else {
				for _, r := range run {
					out = append(out, Token{Kind: Literal, Literal: string(r)})
				}
			}
			i += consumed

		default:
			out = append(out, Token{Kind: Literal, Literal: string(c)})
			i++
		}
	}

	return out, nil
}
