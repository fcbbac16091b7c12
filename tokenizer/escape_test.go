package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sile/erl-tokenize/token"
)

func decodeOne(t *testing.T, s string) rune {
	t.Helper()
	it := newRuneIter(s)
	c, err := decodeEscape(it, token.New())
	require.NoError(t, err)
	return c
}

func TestDecodeEscapeNamedForms(t *testing.T) {
	cases := map[string]rune{
		"b": 0x08, "d": 0x7F, "e": 0x1B, "f": 0x0C, "n": 0x0A,
		"r": 0x0D, "s": 0x20, "t": 0x09, "v": 0x0B,
	}
	for in, want := range cases {
		require.Equal(t, want, decodeOne(t, in), in)
	}
}

func TestDecodeEscapeControl(t *testing.T) {
	require.Equal(t, rune(1), decodeOne(t, "^a"))
}

func TestDecodeEscapeHexBraced(t *testing.T) {
	require.Equal(t, rune(0x1F600), decodeOne(t, "x{1F600}"))
}

func TestDecodeEscapeHexBracedLenientMissingBrace(t *testing.T) {
	require.Equal(t, rune(0x41), decodeOne(t, "x{41"))
}

func TestDecodeEscapeHexTwoDigit(t *testing.T) {
	require.Equal(t, rune(0x41), decodeOne(t, "x41"))
}

func TestDecodeEscapeOctal(t *testing.T) {
	require.Equal(t, rune(0101), decodeOne(t, "101"))
}

func TestDecodeEscapeLiteral(t *testing.T) {
	require.Equal(t, '"', decodeOne(t, `"`))
}

func TestDecodeEscapeInvalidSurrogate(t *testing.T) {
	it := newRuneIter("x{D800}")
	_, err := decodeEscape(it, token.New())
	require.Equal(t, InvalidEscapedChar, err.(*Error).Kind)
}

func TestDecodeEscapeHexTwoDigitRequiresSecondDigit(t *testing.T) {
	it := newRuneIter("xA")
	_, err := decodeEscape(it, token.New())
	require.Equal(t, InvalidEscapedChar, err.(*Error).Kind)
}
