// Package sigilset holds the fixed table of delimiter characters a sigil
// string's opener may be, and the closer each one pairs with.
package sigilset

// brackets map an opener to a distinct closer.
var brackets = map[rune]rune{
	'{': '}',
	'(': ')',
	'[': ']',
	'<': '>',
}

// symmetric delimiters close with themselves.
var symmetric = map[rune]bool{
	'/':  true,
	'|':  true,
	'\'': true,
	'`':  true,
	'#':  true,
	'"':  true,
}

// Closer reports the delimiter that closes a sigil string opened with
// opener, and whether opener is a recognized delimiter at all.
func Closer(opener rune) (rune, bool) {
	if c, ok := brackets[opener]; ok {
		return c, true
	}
	if symmetric[opener] {
		return opener, true
	}
	return 0, false
}
