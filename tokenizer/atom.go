package tokenizer

import (
	"unicode/utf8"

	"github.com/sile/erl-tokenize/token"
)

// scanAtom recognizes a bare or single-quoted atom at the start of s.
func scanAtom(s string, pos token.Position) (token.Token, error) {
	if s == "" {
		return nil, newError(MissingToken, pos)
	}
	if s[0] == '\'' {
		return scanQuotedAtom(s, pos)
	}

	head, w := utf8.DecodeRuneInString(s)
	if !isAtomHead(head) {
		return nil, newError(InvalidAtomToken, pos)
	}

	end := w
	for end < len(s) {
		c, w := utf8.DecodeRuneInString(s[end:])
		if !isAtomContinuation(c) {
			break
		}
		end += w
	}

	text := s[:end]
	return token.NewAtomToken(pos, text, text), nil
}

func scanQuotedAtom(s string, pos token.Position) (token.Token, error) {
	inner := s[1:]
	value, end, err := parseQuotation(pos, inner, '\'')
	if err != nil {
		return nil, err
	}
	text := s[:1+end+1] // opening quote + content + closing quote
	return token.NewAtomToken(pos, text, value), nil
}
