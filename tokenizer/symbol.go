package tokenizer

import (
	"github.com/sile/erl-tokenize/token"
)

// scanSymbol recognizes the longest punctuation spelling at the start of s.
func scanSymbol(s string, pos token.Position) (token.Token, error) {
	sym, length, ok := token.LookupSymbol(s)
	if !ok {
		return nil, newError(InvalidSymbolToken, pos)
	}
	text := s[:length]
	return token.NewSymbolToken(pos, text, sym), nil
}
