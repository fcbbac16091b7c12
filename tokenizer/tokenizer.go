// Package tokenizer implements the lexical analyzer: a pull-based,
// single-threaded dispatcher over the per-kind recognizers, built on the
// shared escape decoder, quotation parser, and character-class predicates.
package tokenizer

import (
	"io"
	"unicode/utf8"

	"github.com/juju/errors"

	"github.com/sile/erl-tokenize/token"
)

// Tokenizer owns an immutable input text and a cursor position. It is not
// safe for concurrent use by multiple goroutines.
type Tokenizer struct {
	text string
	pos  token.Position
}

// New returns a Tokenizer positioned at the start of text.
func New(text string) *Tokenizer {
	return &Tokenizer{text: text, pos: token.New()}
}

// SetFilepath attaches path to every position emitted from now on.
func (t *Tokenizer) SetFilepath(path string) {
	t.pos = t.pos.WithFilepath(path)
}

// NextPosition returns the cursor's current position.
func (t *Tokenizer) NextPosition() token.Position {
	return t.pos
}

// SetPosition restores the cursor to p. The caller must supply a position
// that lies on a UTF-8 code point boundary of the original text; an
// arbitrary byte offset will make subsequent lexing fail or panic.
func (t *Tokenizer) SetPosition(p token.Position) {
	t.pos = p
}

// Finish reclaims the input text, releasing the Tokenizer's hold on it.
func (t *Tokenizer) Finish() string {
	text := t.text
	t.text = ""
	return text
}

// ConsumeChar advances the cursor by a single code point, if any remain.
// It is the sole sanctioned error-recovery primitive: after Next reports an
// error, the cursor is left unchanged, and a caller that wants to resume
// calls ConsumeChar and tries Next again.
func (t *Tokenizer) ConsumeChar() bool {
	rest := t.text[t.pos.Offset:]
	if rest == "" {
		return false
	}
	c, _ := utf8.DecodeRuneInString(rest)
	t.pos = t.pos.StepByChar(c)
	return true
}

// Next recognizes and returns the next token, advancing the cursor past it.
// At end of input it returns io.EOF. On a recognition failure it returns
// the error (traced via juju/errors for caller-side stack context) and
// leaves the cursor unchanged.
func (t *Tokenizer) Next() (token.Token, error) {
	rest := t.text[t.pos.Offset:]
	if rest == "" {
		return nil, io.EOF
	}

	tok, err := dispatch(rest, t.pos)
	if err != nil {
		return nil, errors.Trace(err)
	}
	t.pos = t.pos.StepByText(tok.Text())
	return tok, nil
}

// dispatch routes rest (the remaining input, starting exactly at pos) to
// the recognizer selected by its first code point.
func dispatch(rest string, pos token.Position) (token.Token, error) {
	c0, _ := utf8.DecodeRuneInString(rest)

	switch {
	case isWhitespace(c0):
		return scanWhitespace(rest, pos)
	case isVariableHead(c0):
		return scanVariable(rest, pos)
	case c0 >= '0' && c0 <= '9':
		return scanInteger(rest, pos)
	case c0 == '$':
		return scanChar(rest, pos)
	case c0 == '"':
		return scanString(rest, pos)
	case c0 == '\'':
		return scanAtom(rest, pos)
	case c0 == '%':
		return scanComment(rest, pos)
	case c0 == '~':
		return scanSigilString(rest, pos)
	case isAtomHead(c0):
		return dispatchAtomOrKeyword(rest, pos)
	default:
		return scanSymbol(rest, pos)
	}
}

// dispatchAtomOrKeyword tries keyword reclassification first, falling back
// to plain atom classification when the text is not a reserved word — the
// UnknownKeyword condition from scanKeyword is purely an internal control
// signal and never escapes to the caller.
func dispatchAtomOrKeyword(rest string, pos token.Position) (token.Token, error) {
	tok, err := scanKeyword(rest, pos)
	if err == nil {
		return tok, nil
	}
	if tokErr, ok := err.(*Error); ok && tokErr.Kind == UnknownKeyword {
		return scanAtom(rest, pos)
	}
	return nil, err
}
