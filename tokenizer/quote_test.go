package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sile/erl-tokenize/token"
)

func TestParseQuotationBorrowedFastPath(t *testing.T) {
	value, end, err := parseQuotation(token.New(), `no escapes here"rest`, '"')
	require.NoError(t, err)
	require.Equal(t, "no escapes here", value)
	require.Equal(t, len("no escapes here"), end)
}

func TestParseQuotationEscaped(t *testing.T) {
	value, end, err := parseQuotation(token.New(), `a\nb"rest`, '"')
	require.NoError(t, err)
	require.Equal(t, "a\nb", value)
	require.Equal(t, len(`a\nb`), end)
}

func TestParseQuotationNoClosing(t *testing.T) {
	_, _, err := parseQuotation(token.New(), "unterminated", '"')
	require.Equal(t, NoClosingQuotation, err.(*Error).Kind)
}

func TestParseQuotationEscapedNoClosing(t *testing.T) {
	_, _, err := parseQuotation(token.New(), `a\nb`, '"')
	require.Equal(t, NoClosingQuotation, err.(*Error).Kind)
}
