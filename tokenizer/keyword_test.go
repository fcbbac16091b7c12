package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sile/erl-tokenize/token"
)

func TestScanKeywordFound(t *testing.T) {
	tok, err := scanKeyword("andalso rest", token.New())
	require.NoError(t, err)
	kw := tok.(token.KeywordToken)
	require.Equal(t, "andalso", kw.Text())
	require.Equal(t, token.KeywordAndalso, kw.Value())
}

func TestScanKeywordNotReserved(t *testing.T) {
	_, err := scanKeyword("notakeyword", token.New())
	require.Equal(t, UnknownKeyword, err.(*Error).Kind)
}

func TestScanKeywordQuotedAtomNeverReclassifies(t *testing.T) {
	_, err := scanKeyword("'and'", token.New())
	require.Equal(t, UnknownKeyword, err.(*Error).Kind)
}
