package tokenizer

import (
	"github.com/sile/erl-tokenize/token"
)

// scanKeyword reads an atom and, if its text names a reserved word,
// reclassifies it as a keyword token. Reclassification only applies to bare
// (unquoted) atoms: a quoted atom whose value happens to spell a keyword is
// still an atom, since its Text carries the surrounding quotes.
func scanKeyword(s string, pos token.Position) (token.Token, error) {
	tok, err := scanAtom(s, pos)
	if err != nil {
		return nil, err
	}
	atomTok, ok := tok.(token.AtomToken)
	if !ok || atomTok.Text() != atomTok.Value() {
		return nil, newUnknownKeywordError(pos, "")
	}
	kw, ok := token.LookupKeyword(atomTok.Value())
	if !ok {
		return nil, newUnknownKeywordError(pos, atomTok.Value())
	}
	return token.NewKeywordToken(pos, atomTok.Text(), kw), nil
}
