package tokenizer

import (
	"unicode/utf8"

	"github.com/sile/erl-tokenize/token"

	"github.com/sile/erl-tokenize/internal/sigilset"
)

// scanSigilString recognizes an EEP-0066 sigil string:
// "~" prefix opener content closer suffix, where prefix/suffix are
// atom-continuation runs and opener/closer are a recognized delimiter pair.
func scanSigilString(s string, pos token.Position) (token.Token, error) {
	if s == "" || s[0] != '~' {
		return nil, newError(InvalidSigilStringToken, pos)
	}

	prefixEnd := scanAtomContinuationRun(s[1:]) + 1
	if prefixEnd >= len(s) {
		return nil, newError(InvalidSigilStringToken, pos)
	}
	prefix := s[1:prefixEnd]

	opener, openerWidth := utf8.DecodeRuneInString(s[prefixEnd:])

	if opener == '"' {
		strPos := pos.StepByWidth(prefixEnd)
		strTok, err := scanString(s[prefixEnd:], strPos)
		if err != nil {
			return nil, err
		}
		str := strTok.(token.StringToken)
		contentEnd := prefixEnd + len(str.Text())
		suffixEnd := contentEnd + scanAtomContinuationRun(s[contentEnd:])
		suffix := s[contentEnd:suffixEnd]
		text := s[:suffixEnd]
		value := token.SigilValue{Prefix: prefix, Content: str.Value(), Suffix: suffix}
		return token.NewSigilStringToken(pos, text, value), nil
	}

	closer, ok := sigilset.Closer(opener)
	if !ok {
		return nil, newError(InvalidSigilStringToken, pos)
	}

	contentStart := prefixEnd + openerWidth
	contentPos := pos.StepByWidth(contentStart)
	content, end, err := parseQuotation(contentPos, s[contentStart:], closer)
	if err != nil {
		return nil, err
	}
	contentEnd := contentStart + end + utf8.RuneLen(closer)

	suffixEnd := contentEnd + scanAtomContinuationRun(s[contentEnd:])
	suffix := s[contentEnd:suffixEnd]
	text := s[:suffixEnd]
	value := token.SigilValue{Prefix: prefix, Content: content, Suffix: suffix}
	return token.NewSigilStringToken(pos, text, value), nil
}

// scanAtomContinuationRun returns the byte length of the longest leading
// run of atom-continuation characters in s.
func scanAtomContinuationRun(s string) int {
	end := 0
	for end < len(s) {
		c, w := utf8.DecodeRuneInString(s[end:])
		if !isAtomContinuation(c) {
			break
		}
		end += w
	}
	return end
}
