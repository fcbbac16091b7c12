package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/sile/erl-tokenize/token"
)

// runeIter walks a string's (byteIndex, rune) pairs with one rune of
// lookahead, mirroring the peekable char iterator the escape decoder and
// quotation parser are specified against.
type runeIter struct {
	s   string
	i   int
	has bool
	c   rune
	w   int
}

func newRuneIter(s string) *runeIter {
	it := &runeIter{s: s}
	it.advance()
	return it
}

func (it *runeIter) advance() {
	if it.i >= len(it.s) {
		it.has = false
		return
	}
	c, w := utf8.DecodeRuneInString(it.s[it.i:])
	it.has = true
	it.c = c
	it.w = w
}

func (it *runeIter) peek() (rune, bool) {
	return it.c, it.has
}

// next returns the current rune (and its byte offset) and advances.
func (it *runeIter) next() (int, rune, bool) {
	if !it.has {
		return 0, 0, false
	}
	idx, c := it.i, it.c
	it.i += it.w
	it.advance()
	return idx, c, true
}

// decodeEscape decodes a single escape sequence. it must be positioned
// immediately after the '\' that introduced the escape; pos is the position
// of the character right after that '\' (the caller's convention) and is
// attributed to any error. On success it returns the decoded code point
// with it advanced past the consumed escape chars.
//
// Per the documented lenient policy (spec's one Open Question), a `\x{`
// escape with no closing `}` decodes whatever hex digits were found before
// the first non-hex character or the end of input rather than failing.
func decodeEscape(it *runeIter, pos token.Position) (rune, error) {
	_, c, ok := it.next()
	if !ok {
		return 0, newError(InvalidEscapedChar, pos)
	}
	switch c {
	case 'b':
		return 0x08, nil
	case 'd':
		return 0x7F, nil
	case 'e':
		return 0x1B, nil
	case 'f':
		return 0x0C, nil
	case 'n':
		return 0x0A, nil
	case 'r':
		return 0x0D, nil
	case 's':
		return 0x20, nil
	case 't':
		return 0x09, nil
	case 'v':
		return 0x0B, nil
	case '^':
		_, ctrl, ok := it.next()
		if !ok {
			return 0, newError(InvalidEscapedChar, pos)
		}
		return rune(uint32(ctrl) % 32), nil
	case 'x':
		return decodeHexEscape(it, pos)
	}
	if isOctalDigit(c) {
		return decodeOctalEscape(it, c), nil
	}
	return c, nil
}

func decodeHexEscape(it *runeIter, pos token.Position) (rune, error) {
	var buf strings.Builder
	if c, ok := it.peek(); ok && c == '{' {
		it.next()
		for {
			c, ok := it.peek()
			if !ok || !isHexDigit(c) {
				break
			}
			buf.WriteRune(c)
			it.next()
		}
		if c, ok := it.peek(); ok && c == '}' {
			it.next()
		}
		// Lenient per the documented Open Question: decode whatever hex
		// digits were found even if '}' never appeared.
	} else {
		// Exactly two hex digits are required here; unlike the '{'-delimited
		// form above, running out of input early is an error, not leniency.
		for i := 0; i < 2; i++ {
			c, ok := it.next2()
			if !ok {
				return 0, newError(InvalidEscapedChar, pos)
			}
			buf.WriteRune(c)
		}
	}
	return parseHexRune(buf.String(), pos)
}

// next2 is next without the byte-offset return, for call sites that only
// need the rune.
func (it *runeIter) next2() (rune, bool) {
	_, c, ok := it.next()
	return c, ok
}

func parseHexRune(digits string, pos token.Position) (rune, error) {
	if digits == "" {
		return 0, newError(InvalidEscapedChar, pos)
	}
	var v uint32
	for _, c := range digits {
		d := digitValue(c, 16)
		if d < 0 {
			return 0, newError(InvalidEscapedChar, pos)
		}
		v = v*16 + uint32(d)
	}
	if v > 0x10FFFF || (v >= 0xD800 && v < 0xE000) {
		return 0, newError(InvalidEscapedChar, pos)
	}
	return rune(v), nil
}

func decodeOctalEscape(it *runeIter, first rune) rune {
	n := uint32(first - '0')
	for i := 0; i < 2; i++ {
		c, ok := it.peek()
		if !ok || !isOctalDigit(c) {
			break
		}
		n = n*8 + uint32(c-'0')
		it.next()
	}
	return rune(n)
}
