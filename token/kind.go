package token

// Kind classifies a Token. There are eleven kinds, matching the token
// cases of the reference Erlang scanner plus the EEP-0066 sigil string
// case it adds.
type Kind int

const (
	AtomKind Kind = iota
	CharKind
	CommentKind
	FloatKind
	IntegerKind
	KeywordKind
	StringKind
	SigilStringKind
	SymbolKind
	VariableKind
	WhitespaceKind
)

var kindNames = [...]string{
	AtomKind:        "Atom",
	CharKind:        "Char",
	CommentKind:     "Comment",
	FloatKind:       "Float",
	IntegerKind:     "Integer",
	KeywordKind:     "Keyword",
	StringKind:      "String",
	SigilStringKind: "SigilString",
	SymbolKind:      "Symbol",
	VariableKind:    "Variable",
	WhitespaceKind:  "Whitespace",
}

// String returns the kind's name, e.g. "Atom".
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}
