package tokenizer

import (
	"strconv"

	"github.com/sile/erl-tokenize/token"
)

// scanInteger recognizes a decimal or radix integer at the start of s. A
// radix integer ("R#digits") whose digit run is immediately followed by a
// fractional part escalates to a radix float instead: the Integer and Float
// forms share the same "R#" prefix, and only the presence of a trailing
// '.digit' tells them apart.
func scanInteger(s string, pos token.Position) (token.Token, error) {
	firstLen := scanDigitRun(s, 10)
	if firstLen == 0 {
		return nil, newError(InvalidIntegerToken, pos)
	}

	if firstLen < len(s) && s[firstLen] == '#' {
		return scanRadixNumber(s, pos, firstLen)
	}

	if isDecimalFloatTail(s[firstLen:]) {
		return scanFloat(s, pos)
	}

	text := s[:firstLen]
	value := parseBigIntRadix(stripUnderscores(text), 10)
	return token.NewIntegerToken(pos, text, value), nil
}

// scanRadixNumber parses the "R#digits" common prefix shared by radix
// integers and radix floats, then dispatches on whether a '.' fraction
// follows.
func scanRadixNumber(s string, pos token.Position, radixLen int) (token.Token, error) {
	radix, err := strconv.Atoi(stripUnderscores(s[:radixLen]))
	if err != nil || radix < 2 || radix > 36 {
		return nil, newError(InvalidIntegerToken, pos)
	}

	digitsStart := radixLen + 1
	digitsLen := scanDigitRun(s[digitsStart:], radix)
	if digitsLen == 0 {
		return nil, newError(InvalidIntegerToken, pos)
	}
	digitsEnd := digitsStart + digitsLen

	if isRadixFloatTail(s[digitsEnd:], radix) {
		return scanRadixFloat(s, pos, radix, digitsEnd)
	}

	text := s[:digitsEnd]
	value := parseBigIntRadix(stripUnderscores(s[digitsStart:digitsEnd]), radix)
	return token.NewIntegerToken(pos, text, value), nil
}
