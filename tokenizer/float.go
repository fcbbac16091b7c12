package tokenizer

import (
	"strconv"

	"github.com/sile/erl-tokenize/token"
)

// scanFloat recognizes a decimal float ("intpart.fracpart[e[+-]exp]") at the
// start of s. The dispatcher sends every leading digit to scanInteger, which
// calls scanFloat once it finds the defining '.digit' after the leading
// digit run; scanInteger reaches the radix form itself via scanRadixFloat.
func scanFloat(s string, pos token.Position) (token.Token, error) {
	intLen := scanDigitRun(s, 10)
	if intLen == 0 || !isDecimalFloatTail(s[intLen:]) {
		return nil, newError(InvalidFloatToken, pos)
	}

	fracStart := intLen + 1
	fracLen := scanDigitRun(s[fracStart:], 10)
	if fracLen == 0 {
		return nil, newError(InvalidFloatToken, pos)
	}
	fracEnd := fracStart + fracLen

	exp, expLen, hasExp, err := parseExponent(s[fracEnd:], pos)
	if err != nil {
		return nil, err
	}

	text := s[:fracEnd+expLen]
	intDigits := stripUnderscores(s[:intLen])
	fracDigits := stripUnderscores(s[fracStart:fracEnd])
	value := computeFloatValue(10, intDigits, fracDigits, exp, hasExp)
	return token.NewFloatToken(pos, text, value), nil
}

// scanRadixFloat parses the fractional and exponent parts that follow an
// already-recognized "R#intpart" prefix (digitsEnd is the byte offset of the
// '.' in s).
func scanRadixFloat(s string, pos token.Position, radix int, digitsEnd int) (token.Token, error) {
	fracStart := digitsEnd + 1
	fracLen := scanDigitRun(s[fracStart:], radix)
	if fracLen == 0 {
		return nil, newError(InvalidFloatToken, pos)
	}
	fracEnd := fracStart + fracLen

	// The exponent on a radix float is introduced by "#e" (or "#E"), not a
	// bare 'e' (e.g. the "#e8" in "2#0.10101#e8").
	exp, expLen, hasExp, err := parseRadixExponent(s[fracEnd:], pos)
	if err != nil {
		return nil, err
	}

	text := s[:fracEnd+expLen]
	intDigits := stripUnderscores(integerPartOf(s, digitsEnd))
	fracDigits := stripUnderscores(s[fracStart:fracEnd])
	value := computeFloatValue(radix, intDigits, fracDigits, exp, hasExp)
	return token.NewFloatToken(pos, text, value), nil
}

// integerPartOf extracts the post-'#' digit run preceding the '.' at
// digitsEnd within s (the "R#" prefix is whatever precedes the first '#').
func integerPartOf(s string, digitsEnd int) string {
	hashIdx := -1
	for i := 0; i < digitsEnd; i++ {
		if s[i] == '#' {
			hashIdx = i
			break
		}
	}
	return s[hashIdx+1 : digitsEnd]
}

func isDecimalFloatTail(tail string) bool {
	return len(tail) >= 2 && tail[0] == '.' && digitValue(rune(tail[1]), 10) >= 0
}

func isRadixFloatTail(tail string, radix int) bool {
	return len(tail) >= 2 && tail[0] == '.' && digitValue(rune(tail[1]), radix) >= 0
}

// parseExponent parses an optional decimal scientific-notation suffix
// "[eE][+-]?digits" at the start of s.
func parseExponent(s string, pos token.Position) (value int, length int, ok bool, err error) {
	return parseSignedExponent(s, pos, func(s string) int {
		if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
			return 1
		}
		return 0
	})
}

// parseRadixExponent parses the optional "#e[+-]?digits" (or "#E...")
// exponent suffix specific to radix floats (e.g. the "#e8" in
// "2#0.10101#e8"); unlike the decimal form, the marker is two characters.
func parseRadixExponent(s string, pos token.Position) (value int, length int, ok bool, err error) {
	return parseSignedExponent(s, pos, func(s string) int {
		if len(s) > 1 && s[0] == '#' && (s[1] == 'e' || s[1] == 'E') {
			return 2
		}
		return 0
	})
}

// parseSignedExponent parses an optional exponent suffix whose marker is
// matched by matchMarker (returning the marker's byte length, or 0 if s
// doesn't start with one), followed by an optional sign and a decimal digit
// run.
func parseSignedExponent(s string, pos token.Position, matchMarker func(string) int) (value int, length int, ok bool, err error) {
	markerLen := matchMarker(s)
	if markerLen == 0 {
		return 0, 0, false, nil
	}
	i := markerLen
	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	digitsLen := scanDigitRun(s[i:], 10)
	if digitsLen == 0 {
		return 0, 0, false, newError(InvalidFloatToken, pos)
	}
	n, convErr := strconv.Atoi(stripUnderscores(s[i : i+digitsLen]))
	if convErr != nil {
		return 0, 0, false, newError(InvalidFloatToken, pos)
	}
	return sign * n, i + digitsLen, true, nil
}
