package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sile/erl-tokenize/token"
)

func TestScanWhitespaceEachKind(t *testing.T) {
	for _, c := range []rune{' ', '\t', '\r', '\n', ' '} {
		tok, err := scanWhitespace(string(c)+"x", token.New())
		require.NoError(t, err)
		w := tok.(token.WhitespaceToken)
		require.Equal(t, c, w.Value())
	}
}

func TestScanWhitespaceNoRunCollapsing(t *testing.T) {
	tok, err := scanWhitespace("   ", token.New())
	require.NoError(t, err)
	require.Equal(t, " ", tok.Text())
}

func TestScanWhitespaceInvalid(t *testing.T) {
	_, err := scanWhitespace("x", token.New())
	require.Equal(t, InvalidWhitespaceToken, err.(*Error).Kind)
}
