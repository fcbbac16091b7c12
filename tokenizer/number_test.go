package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanDigitRunUnderscoreRules(t *testing.T) {
	require.Equal(t, len("1_000"), scanDigitRun("1_000", 10))
	// Trailing underscore not followed by a digit stops the run early.
	require.Equal(t, len("12"), scanDigitRun("12_", 10))
	// Leading underscore never starts a run.
	require.Equal(t, 0, scanDigitRun("_12", 10))
	// Doubled underscore stops after the first valid digit run.
	require.Equal(t, len("1"), scanDigitRun("1__2", 10))
}

func TestScanDigitRunRespectsBase(t *testing.T) {
	require.Equal(t, len("ff"), scanDigitRun("ffgg", 16))
	require.Equal(t, len("7"), scanDigitRun("78", 8))
}

func TestStripUnderscores(t *testing.T) {
	require.Equal(t, "1000000", stripUnderscores("1_000_000"))
	require.Equal(t, "abc", stripUnderscores("abc"))
}

func TestComputeFloatValue(t *testing.T) {
	require.InDelta(t, 168.0, computeFloatValue(2, "0", "10101", 8, true), 1e-9)
	require.InDelta(t, 1.5, computeFloatValue(10, "1", "5", 0, false), 1e-9)
}
