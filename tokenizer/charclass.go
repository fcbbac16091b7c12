package tokenizer

import "unicode"

// isAtomHead reports whether c may begin a bare (unquoted) atom: 'a'..'z' or
// any other lowercase alphabetic Unicode scalar.
func isAtomHead(c rune) bool {
	if c >= 'a' && c <= 'z' {
		return true
	}
	return unicode.IsLower(c) && unicode.IsLetter(c)
}

// isAtomContinuation reports whether c may continue a bare atom after its
// head character: '@', '_', a decimal digit, or any alphabetic scalar.
func isAtomContinuation(c rune) bool {
	switch c {
	case '@', '_':
		return true
	}
	if c >= '0' && c <= '9' {
		return true
	}
	return unicode.IsLetter(c)
}

// isVariableHead reports whether c may begin a variable: 'A'..'Z' or '_'.
func isVariableHead(c rune) bool {
	return (c >= 'A' && c <= 'Z') || c == '_'
}

// isVariableContinuation reports whether c may continue a variable after
// its head character: an ASCII letter, digit, '@', or '_'.
func isVariableContinuation(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '@' || c == '_':
		return true
	}
	return false
}

// isWhitespace reports whether c is one of the five recognized whitespace
// code points: space, tab, CR, LF, NBSP.
func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\u00A0':
		return true
	}
	return false
}

// isOctalDigit reports whether c is an ASCII octal digit.
func isOctalDigit(c rune) bool {
	return c >= '0' && c <= '7'
}

// isHexDigit reports whether c is an ASCII hexadecimal digit.
func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// digitValue returns the numeric value of an ASCII digit in the given base
// (2..=36), or -1 if c is not a valid digit in that base.
func digitValue(c rune, base int) int {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return -1
	}
	if v >= base {
		return -1
	}
	return v
}
