package token

import "math/big"

// Token is the common interface satisfied by every lexed token, regardless
// of kind. A Token holds its position by value; its literal source text is
// a substring of the input and shares the input's memory. Go strings are
// immutable, so callers may retain tokens after the tokenizer that produced
// them is gone.
type Token interface {
	// Kind reports which of the eleven token cases this is.
	Kind() Kind

	// Pos is the position of the token's first byte.
	Pos() Position

	// Text is the exact source substring this token consumed.
	Text() string
}

// base is embedded by every concrete token type to supply Pos and Text.
type base struct {
	pos  Position
	text string
}

func (b base) Pos() Position { return b.pos }
func (b base) Text() string  { return b.text }

// AtomToken is an Erlang atom literal, quoted or not. Value holds the
// unquoted name with any escapes already decoded; Text includes the
// surrounding quotes iff the atom was written quoted.
type AtomToken struct {
	base
	value string
}

func NewAtomToken(pos Position, text, value string) AtomToken {
	return AtomToken{base{pos, text}, value}
}
func (AtomToken) Kind() Kind      { return AtomKind }
func (t AtomToken) Value() string { return t.value }

// CharToken is a `$c` character literal. Value is the single decoded code
// point; Text begins with '$' and includes the escape span, if any.
type CharToken struct {
	base
	value rune
}

func NewCharToken(pos Position, text string, value rune) CharToken {
	return CharToken{base{pos, text}, value}
}
func (CharToken) Kind() Kind    { return CharKind }
func (t CharToken) Value() rune { return t.value }

// CommentToken is a `%`-introduced end-of-line comment. Value is the text
// after the leading '%' up to (not including) the line terminator.
type CommentToken struct {
	base
	value string
}

func NewCommentToken(pos Position, text, value string) CommentToken {
	return CommentToken{base{pos, text}, value}
}
func (CommentToken) Kind() Kind      { return CommentKind }
func (t CommentToken) Value() string { return t.value }

// FloatToken is a decimal or radix floating-point literal. Value is the
// parsed IEEE-754 double; Text is the exact source form, underscores and
// radix prefix included.
type FloatToken struct {
	base
	value float64
}

func NewFloatToken(pos Position, text string, value float64) FloatToken {
	return FloatToken{base{pos, text}, value}
}
func (FloatToken) Kind() Kind        { return FloatKind }
func (t FloatToken) Value() float64 { return t.value }

// IntegerToken is a decimal or radix integer literal. Value is arbitrary
// precision and always non-negative (Erlang has no lexical negative integer
// literal; unary minus is a separate operator token applied by the parser).
type IntegerToken struct {
	base
	value *big.Int
}

func NewIntegerToken(pos Position, text string, value *big.Int) IntegerToken {
	return IntegerToken{base{pos, text}, value}
}
func (IntegerToken) Kind() Kind        { return IntegerKind }
func (t IntegerToken) Value() *big.Int { return t.value }

// KeywordToken is one of Erlang's reserved words. Text equals the reserved
// word's spelling exactly.
type KeywordToken struct {
	base
	value Keyword
}

func NewKeywordToken(pos Position, text string, value Keyword) KeywordToken {
	return KeywordToken{base{pos, text}, value}
}
func (KeywordToken) Kind() Kind       { return KeywordKind }
func (t KeywordToken) Value() Keyword { return t.value }

// StringToken is a `"..."` or triple-quoted string literal. Value is the
// decoded contents; Text includes the quotation delimiters.
type StringToken struct {
	base
	value string
}

func NewStringToken(pos Position, text, value string) StringToken {
	return StringToken{base{pos, text}, value}
}
func (StringToken) Kind() Kind      { return StringKind }
func (t StringToken) Value() string { return t.value }

// SigilValue is the decomposed form of a sigil string: ~prefix<open>content<close>suffix.
type SigilValue struct {
	Prefix  string
	Content string
	Suffix  string
}

// SigilStringToken is an EEP-0066 sigil string, e.g. `~b"101"`. Text starts
// with '~' and includes both delimiters.
type SigilStringToken struct {
	base
	value SigilValue
}

func NewSigilStringToken(pos Position, text string, value SigilValue) SigilStringToken {
	return SigilStringToken{base{pos, text}, value}
}
func (SigilStringToken) Kind() Kind          { return SigilStringKind }
func (t SigilStringToken) Value() SigilValue { return t.value }

// SymbolToken is one of the fixed punctuation spellings in §6. Text equals
// the symbol's canonical spelling.
type SymbolToken struct {
	base
	value Symbol
}

func NewSymbolToken(pos Position, text string, value Symbol) SymbolToken {
	return SymbolToken{base{pos, text}, value}
}
func (SymbolToken) Kind() Kind      { return SymbolKind }
func (t SymbolToken) Value() Symbol { return t.value }

// VariableToken is an identifier beginning with an uppercase letter or '_'.
// Value equals Text; the lone "_" is a valid variable.
type VariableToken struct {
	base
	value string
}

func NewVariableToken(pos Position, text, value string) VariableToken {
	return VariableToken{base{pos, text}, value}
}
func (VariableToken) Kind() Kind      { return VariableKind }
func (t VariableToken) Value() string { return t.value }

// WhitespaceToken is a single whitespace code point: space, tab, CR, LF, or
// NBSP. Runs of whitespace are never collapsed into one token.
type WhitespaceToken struct {
	base
	value rune
}

func NewWhitespaceToken(pos Position, text string, value rune) WhitespaceToken {
	return WhitespaceToken{base{pos, text}, value}
}
func (WhitespaceToken) Kind() Kind    { return WhitespaceKind }
func (t WhitespaceToken) Value() rune { return t.value }
