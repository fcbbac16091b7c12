package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sile/erl-tokenize/token"
)

func TestScanFloatDecimal(t *testing.T) {
	tok, err := scanFloat("1.5 rest", token.New())
	require.NoError(t, err)
	f := tok.(token.FloatToken)
	require.Equal(t, "1.5", f.Text())
	require.InDelta(t, 1.5, f.Value(), 1e-9)
}

func TestScanFloatDecimalExponent(t *testing.T) {
	tok, err := scanFloat("1.5e-2 rest", token.New())
	require.NoError(t, err)
	f := tok.(token.FloatToken)
	require.Equal(t, "1.5e-2", f.Text())
	require.InDelta(t, 0.015, f.Value(), 1e-9)
}

func TestScanFloatMissingFraction(t *testing.T) {
	_, err := scanFloat("1.", token.New())
	require.Equal(t, InvalidFloatToken, err.(*Error).Kind)
}

func TestScanRadixFloatSeedScenario(t *testing.T) {
	// Seed scenario: "2#0.10101#e8" -> 168.0.
	tok, err := scanInteger("2#0.10101#e8", token.New())
	require.NoError(t, err)
	f := tok.(token.FloatToken)
	require.Equal(t, "2#0.10101#e8", f.Text())
	require.InDelta(t, 168.0, f.Value(), 1e-9)
}

func TestScanRadixFloatWithoutExponent(t *testing.T) {
	tok, err := scanInteger("16#a.8", token.New())
	require.NoError(t, err)
	f := tok.(token.FloatToken)
	require.InDelta(t, 10.5, f.Value(), 1e-9)
}

func TestScanRadixFloatHashAloneIsNotAnExponentMarker(t *testing.T) {
	// A bare '#' not followed by 'e'/'E' doesn't start an exponent; it's
	// left unconsumed, trailing the float token.
	tok, err := scanInteger("2#0.1#rest", token.New())
	require.NoError(t, err)
	f := tok.(token.FloatToken)
	require.Equal(t, "2#0.1", f.Text())
}
