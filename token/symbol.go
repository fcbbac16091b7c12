package token

// Symbol enumerates every punctuation spelling (one to three characters)
// recognized by the tokenizer, longest first. The table below is the single source of
// truth: both the recognizer's longest-match search and String use it, so
// the two can never drift apart.
type Symbol int

const (
	SymEqColonEq Symbol = iota // =:=
	SymEqSlashEq               // =/=
	SymEllipsis                // ...
	SymLtColonDash             // <:-
	SymLtColonEq               // <:=

	SymColonColon // ::
	SymColonEq    // :=
	SymPipePipe   // ||
	SymMinusMinus // --
	SymPlusPlus   // ++
	SymArrow      // ->
	SymLArrow     // <-
	SymMapArrow   // =>
	SymLe         // <=
	SymShr        // >>
	SymShl        // <<
	SymEqEq       // ==
	SymNe         // /=
	SymGe         // >=
	SymGeRev      // =<
	SymQQ         // ??
	SymQEq        // ?=
	SymDotDot     // ..
	SymAndAnd     // &&

	SymLBracket  // [
	SymRBracket  // ]
	SymLParen    // (
	SymRParen    // )
	SymLBrace    // {
	SymRBrace    // }
	SymHash      // #
	SymSlash     // /
	SymDot       // .
	SymComma     // ,
	SymColon     // :
	SymSemicolon // ;
	SymEq        // =
	SymPipe      // |
	SymQuestion  // ?
	SymBang      // !
	SymMinus     // -
	SymPlus      // +
	SymStar      // *
	SymGt        // >
	SymLt        // <
)

// symbolEntry pairs a Symbol with its canonical spelling.
type symbolEntry struct {
	Symbol   Symbol
	Spelling string
}

// Symbols3, Symbols2, Symbols1 hold every recognized spelling grouped by
// length, in the order the tokenizer must try them (3 before 2 before 1) to
// get longest-match semantics. A declarative table, not a trie: at this
// alphabet size a three-level linear scan is exactly as fast and far less
// code to keep in sync.
var (
	Symbols3 = []symbolEntry{
		{SymEqColonEq, "=:="},
		{SymEqSlashEq, "=/="},
		{SymEllipsis, "..."},
		{SymLtColonDash, "<:-"},
		{SymLtColonEq, "<:="},
	}

	Symbols2 = []symbolEntry{
		{SymColonColon, "::"},
		{SymColonEq, ":="},
		{SymPipePipe, "||"},
		{SymMinusMinus, "--"},
		{SymPlusPlus, "++"},
		{SymArrow, "->"},
		{SymLArrow, "<-"},
		{SymMapArrow, "=>"},
		{SymLe, "<="},
		{SymShr, ">>"},
		{SymShl, "<<"},
		{SymEqEq, "=="},
		{SymNe, "/="},
		{SymGe, ">="},
		{SymGeRev, "=<"},
		{SymQQ, "??"},
		{SymQEq, "?="},
		{SymDotDot, ".."},
		{SymAndAnd, "&&"},
	}

	Symbols1 = []symbolEntry{
		{SymLBracket, "["},
		{SymRBracket, "]"},
		{SymLParen, "("},
		{SymRParen, ")"},
		{SymLBrace, "{"},
		{SymRBrace, "}"},
		{SymHash, "#"},
		{SymSlash, "/"},
		{SymDot, "."},
		{SymComma, ","},
		{SymColon, ":"},
		{SymSemicolon, ";"},
		{SymEq, "="},
		{SymPipe, "|"},
		{SymQuestion, "?"},
		{SymBang, "!"},
		{SymMinus, "-"},
		{SymPlus, "+"},
		{SymStar, "*"},
		{SymGt, ">"},
		{SymLt, "<"},
	}
)

var symbolSpellings = buildSymbolSpellings()

func buildSymbolSpellings() map[Symbol]string {
	m := make(map[Symbol]string, len(Symbols3)+len(Symbols2)+len(Symbols1))
	for _, group := range [][]symbolEntry{Symbols3, Symbols2, Symbols1} {
		for _, e := range group {
			m[e.Symbol] = e.Spelling
		}
	}
	return m
}

// String returns the symbol's canonical spelling, e.g. "->".
func (s Symbol) String() string {
	if spelling, ok := symbolSpellings[s]; ok {
		return spelling
	}
	return "INVALID_SYMBOL"
}

// LookupSymbol finds the longest spelling in Symbols3/Symbols2/Symbols1 that
// prefixes rest, trying 3-character spellings before 2-character before
// 1-character. It reports the matched Symbol and the byte length consumed,
// or ok=false if rest starts with no recognized spelling at all.
func LookupSymbol(rest string) (sym Symbol, length int, ok bool) {
	for _, group := range []struct {
		n       int
		entries []symbolEntry
	}{
		{3, Symbols3},
		{2, Symbols2},
		{1, Symbols1},
	} {
		if len(rest) < group.n {
			continue
		}
		candidate := rest[:group.n]
		for _, e := range group.entries {
			if e.Spelling == candidate {
				return e.Symbol, group.n, true
			}
		}
	}
	return 0, 0, false
}
