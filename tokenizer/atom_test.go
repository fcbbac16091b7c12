package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sile/erl-tokenize/token"
)

func TestScanAtomBare(t *testing.T) {
	tok, err := scanAtom("foo_Bar1 rest", token.New())
	require.NoError(t, err)
	atom := tok.(token.AtomToken)
	require.Equal(t, "foo_Bar1", atom.Text())
	require.Equal(t, "foo_Bar1", atom.Value())
}

func TestScanAtomQuoted(t *testing.T) {
	tok, err := scanAtom(`'hello world'rest`, token.New())
	require.NoError(t, err)
	atom := tok.(token.AtomToken)
	require.Equal(t, `'hello world'`, atom.Text())
	require.Equal(t, "hello world", atom.Value())
}

func TestScanAtomQuotedWithEscape(t *testing.T) {
	tok, err := scanAtom(`'a\nb'`, token.New())
	require.NoError(t, err)
	atom := tok.(token.AtomToken)
	require.Equal(t, "a\nb", atom.Value())
}

func TestScanAtomInvalidHead(t *testing.T) {
	_, err := scanAtom("Foo", token.New())
	require.Error(t, err)
	require.Equal(t, InvalidAtomToken, err.(*Error).Kind)
}

func TestScanAtomEmpty(t *testing.T) {
	_, err := scanAtom("", token.New())
	require.Equal(t, MissingToken, err.(*Error).Kind)
}

func TestScanAtomUnclosedQuote(t *testing.T) {
	_, err := scanAtom(`'unterminated`, token.New())
	require.Equal(t, NoClosingQuotation, err.(*Error).Kind)
}
