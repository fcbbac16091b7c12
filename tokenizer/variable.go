package tokenizer

import (
	"unicode/utf8"

	"github.com/sile/erl-tokenize/token"
)

// scanVariable recognizes a variable at the start of s. The lone "_" is a
// valid variable: the continuation run may be empty.
func scanVariable(s string, pos token.Position) (token.Token, error) {
	if s == "" {
		return nil, newError(MissingToken, pos)
	}

	head, w := utf8.DecodeRuneInString(s)
	if !isVariableHead(head) {
		return nil, newError(InvalidVariableToken, pos)
	}

	end := w
	for end < len(s) {
		c, w := utf8.DecodeRuneInString(s[end:])
		if !isVariableContinuation(c) {
			break
		}
		end += w
	}

	text := s[:end]
	return token.NewVariableToken(pos, text, text), nil
}
