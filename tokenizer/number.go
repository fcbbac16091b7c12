package tokenizer

import (
	"math"
	"math/big"
	"strings"
)

// scanDigitRun reads the longest run at the start of s consisting of digits
// valid in base and embedded single underscores, where every underscore
// must be both preceded and followed by a valid digit (never adjacent to
// another underscore, to a boundary, or — by construction, since the caller
// stops the run there — to a radix '#'). It returns the number of bytes
// consumed; 0 means s does not begin with a digit in base.
func scanDigitRun(s string, base int) int {
	i := 0
	lastWasDigit := false
	for i < len(s) {
		c := rune(s[i])
		if c == '_' {
			if !lastWasDigit {
				break
			}
			if i+1 >= len(s) || digitValue(rune(s[i+1]), base) < 0 {
				break
			}
			i++
			lastWasDigit = false
			continue
		}
		if digitValue(c, base) < 0 {
			break
		}
		i++
		lastWasDigit = true
	}
	return i
}

// stripUnderscores removes the separator characters validated by scanDigitRun.
func stripUnderscores(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		if c != '_' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// parseBigIntRadix parses digits (already underscore-free) as a
// non-negative integer in the given base.
func parseBigIntRadix(digits string, base int) *big.Int {
	v := new(big.Int)
	b := big.NewInt(int64(base))
	d := new(big.Int)
	for _, c := range digits {
		dv := digitValue(c, base)
		d.SetInt64(int64(dv))
		v.Mul(v, b)
		v.Add(v, d)
	}
	return v
}

// computeFloatValue evaluates intDigits.fracDigits in the given radix
// (underscore-free digit strings), optionally scaled by radix^exp.
func computeFloatValue(radix int, intDigits, fracDigits string, exp int, hasExp bool) float64 {
	var mantissa float64
	for _, c := range intDigits {
		mantissa = mantissa*float64(radix) + float64(digitValue(c, radix))
	}

	scale := 1.0 / float64(radix)
	for _, c := range fracDigits {
		mantissa += float64(digitValue(c, radix)) * scale
		scale /= float64(radix)
	}

	if hasExp {
		mantissa *= math.Pow(float64(radix), float64(exp))
	}
	return mantissa
}
