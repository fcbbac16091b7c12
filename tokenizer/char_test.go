package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sile/erl-tokenize/token"
)

func TestScanCharPlain(t *testing.T) {
	tok, err := scanChar("$a rest", token.New())
	require.NoError(t, err)
	c := tok.(token.CharToken)
	require.Equal(t, "$a", c.Text())
	require.Equal(t, 'a', c.Value())
}

func TestScanCharControlEscape(t *testing.T) {
	// Seed scenario: "$\^a" -> U+0001.
	tok, err := scanChar(`$\^a`, token.New())
	require.NoError(t, err)
	c := tok.(token.CharToken)
	require.Equal(t, `$\^a`, c.Text())
	require.Equal(t, rune(1), c.Value())
}

func TestScanCharNamedEscape(t *testing.T) {
	tok, err := scanChar(`$\n`, token.New())
	require.NoError(t, err)
	c := tok.(token.CharToken)
	require.Equal(t, rune('\n'), c.Value())
}

func TestScanCharMissingHead(t *testing.T) {
	_, err := scanChar("a", token.New())
	require.Equal(t, InvalidCharToken, err.(*Error).Kind)
}

func TestScanCharEmptyAfterDollar(t *testing.T) {
	_, err := scanChar("$", token.New())
	require.Equal(t, InvalidCharToken, err.(*Error).Kind)
}
