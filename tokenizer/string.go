package tokenizer

import (
	"strings"

	"github.com/sile/erl-tokenize/token"
)

// scanString recognizes a single-quoted or (EEP-0064) triple-quoted string
// at the start of s.
func scanString(s string, pos token.Position) (token.Token, error) {
	if s == "" || s[0] != '"' {
		return nil, newError(InvalidStringToken, pos)
	}
	n := countLeadingQuotes(s)
	if n >= 3 {
		return scanTripleQuotedString(s, pos, n)
	}
	return scanSingleQuotedString(s, pos)
}

func countLeadingQuotes(s string) int {
	n := 0
	for n < len(s) && s[n] == '"' {
		n++
	}
	return n
}

func scanSingleQuotedString(s string, pos token.Position) (token.Token, error) {
	value, end, err := parseQuotation(pos, s[1:], '"')
	if err != nil {
		return nil, err
	}
	closeEnd := 1 + end + 1
	if closeEnd < len(s) && s[closeEnd] == '"' {
		return nil, newError(AdjacentStringLiterals, pos)
	}
	text := s[:closeEnd]
	return token.NewStringToken(pos, text, value), nil
}

// scanTripleQuotedString recognizes an EEP-0064 string whose opening
// delimiter is n (n>=3) consecutive '"' characters.
func scanTripleQuotedString(s string, pos token.Position, n int) (token.Token, error) {
	rest := s[n:]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return nil, newError(NoClosingQuotation, pos)
	}
	for i := 0; i < nl; i++ {
		c := rest[i]
		if c != ' ' && c != '\t' && c != '\r' {
			return nil, newError(InvalidStringToken, pos)
		}
	}

	body := rest[nl+1:]
	bodyOffset := n + nl + 1
	quotes := strings.Repeat(`"`, n)

	lineStart := 0
	var contentLines []string
	for {
		lineEnd := strings.IndexByte(body[lineStart:], '\n')
		var line string
		atEOF := lineEnd < 0
		if atEOF {
			line = body[lineStart:]
		} else {
			line = body[lineStart : lineStart+lineEnd]
		}

		stripped := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(stripped, quotes) {
			indent := len(line) - len(stripped)
			value, err := joinTripleQuotedLines(contentLines, indent, pos)
			if err != nil {
				return nil, err
			}
			consumed := bodyOffset + lineStart + indent + n
			text := s[:consumed]
			return token.NewStringToken(pos, text, value), nil
		}
		if atEOF {
			return nil, newError(NoClosingQuotation, pos)
		}
		contentLines = append(contentLines, line)
		lineStart += lineEnd + 1
	}
}

// joinTripleQuotedLines strips the common indentation from each content
// line (blank lines are exempt) and joins them with '\n', without a
// trailing newline after the last line.
func joinTripleQuotedLines(lines []string, indent int, pos token.Position) (string, error) {
	var b strings.Builder
	for i, line := range lines {
		if line != "" {
			stripped := 0
			for stripped < indent && stripped < len(line) && (line[stripped] == ' ' || line[stripped] == '\t') {
				stripped++
			}
			if stripped < indent && stripped < len(line) {
				return "", newError(InvalidStringToken, pos)
			}
			line = line[stripped:]
		}
		b.WriteString(line)
		if i != len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
