package tokenizer

import (
	"strings"

	"github.com/sile/erl-tokenize/token"
)

// scanComment recognizes a '%' comment running to but not including the
// next '\n', or end of input.
func scanComment(s string, pos token.Position) (token.Token, error) {
	if len(s) == 0 || s[0] != '%' {
		return nil, newError(InvalidCommentToken, pos)
	}
	end := strings.IndexByte(s, '\n')
	if end < 0 {
		end = len(s)
	}
	text := s[:end]
	return token.NewCommentToken(pos, text, text[1:]), nil
}
