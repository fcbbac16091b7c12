package tokenizer

import (
	"unicode/utf8"

	"github.com/sile/erl-tokenize/token"
)

// scanChar recognizes a character literal: '$' followed by exactly one
// source character, or by a backslash escape.
func scanChar(s string, pos token.Position) (token.Token, error) {
	if len(s) == 0 || s[0] != '$' {
		return nil, newError(InvalidCharToken, pos)
	}
	rest := s[1:]
	if rest == "" {
		return nil, newError(InvalidCharToken, pos)
	}

	head, w := utf8.DecodeRuneInString(rest)
	if head == '\\' {
		it := newRuneIter(rest[w:])
		escPos := pos.StepByWidth(1 + w) // position immediately after '\\', matching decodeEscape's contract
		value, err := decodeEscape(it, escPos)
		if err != nil {
			return nil, err
		}
		text := s[:1+w+it.i]
		return token.NewCharToken(pos, text, value), nil
	}

	text := s[:1+w]
	return token.NewCharToken(pos, text, head), nil
}
