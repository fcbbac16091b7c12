package tokenizer

import (
	"strings"

	"github.com/sile/erl-tokenize/token"
)

// parseQuotation scans s, which begins immediately after an opening quote
// character, until the first unescaped terminator. It returns the decoded
// contents and the byte index of the terminator within s.
//
// If the span up to the terminator contains no backslash, the returned
// string is simply a slice of s (Go strings already share the backing
// array, so this is the "borrowed" case from the spec's borrowed/owned
// design note at no extra cost). Otherwise escapes are decoded into a
// freshly built string.
func parseQuotation(pos token.Position, s string, terminator rune) (string, int, error) {
	maybeEnd := strings.IndexRune(s, terminator)
	if maybeEnd < 0 {
		return "", 0, newError(NoClosingQuotation, pos)
	}
	if !strings.Contains(s[:maybeEnd], "\\") {
		return s[:maybeEnd], maybeEnd, nil
	}
	return parseQuotationEscaped(pos, s, terminator)
}

func parseQuotationEscaped(pos token.Position, s string, terminator rune) (string, int, error) {
	var buf strings.Builder
	it := newRuneIter(s)
	for {
		idx, c, ok := it.next()
		if !ok {
			return "", 0, newError(NoClosingQuotation, pos)
		}
		if c == '\\' {
			escPos := pos.StepByWidth(idx + 1)
			decoded, err := decodeEscape(it, escPos)
			if err != nil {
				return "", 0, err
			}
			buf.WriteRune(decoded)
			continue
		}
		if c == terminator {
			return buf.String(), idx, nil
		}
		buf.WriteRune(c)
	}
}
