package tokenizer

import (
	"unicode/utf8"

	"github.com/sile/erl-tokenize/token"
)

// scanWhitespace recognizes a single whitespace code point. Runs are never
// collapsed: each space, tab, CR, LF, or NBSP is its own token.
func scanWhitespace(s string, pos token.Position) (token.Token, error) {
	if s == "" {
		return nil, newError(MissingToken, pos)
	}
	c, w := utf8.DecodeRuneInString(s)
	if !isWhitespace(c) {
		return nil, newError(InvalidWhitespaceToken, pos)
	}
	return token.NewWhitespaceToken(pos, s[:w], c), nil
}
