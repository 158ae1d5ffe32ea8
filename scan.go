// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// The number grammar: -?digits(.digits(e-?digits)?)?.  An exponent is
// admitted only after a fraction. The pattern matches a prefix of the
// digit run and captures the fraction and exponent digit runs, so that
// a separator with no digits after it can be distinguished from a
// string that does not match the grammar at all.
var numberRE = regexp.MustCompile(`^-?[0-9]+(?:\.([0-9]*)(?:e(-?[0-9]*))?)?`)

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isNumRune(ch rune) bool {
	return ch == '-' || ch == '.' || ch == 'e' || isDigit(ch)
}

// skipSpace consumes whitespace, leaving the first non-blank rune
// unread. The end of the source terminates the scan silently.
func (p *Parser) skipSpace() {
	for {
		ch, err := p.cs.Rune()
		if err != nil {
			return
		}
		if !isSpace(ch) {
			p.cs.Unrune()
			return
		}
	}
}

// matchLiteral reports whether the next runes of the source are exactly
// want, consuming them if so. On a mismatch or at the end of the source
// the cursor is rewound and nothing is consumed.
func (p *Parser) matchLiteral(want mem.RO) bool {
	p.cs.Mark()
	got := make([]byte, 0, 8)
	for len(got) < want.Len() {
		ch, err := p.cs.Rune()
		if err != nil {
			p.cs.Reset()
			return false
		}
		got = utf8.AppendRune(got, ch)
	}
	if !mem.B(got).Equal(want) {
		p.cs.Reset()
		return false
	}
	return true
}

// scanDelimited consumes runes up to the next unescaped occurrence of
// end, returning the accumulated text exclusive of end itself. A
// backslash escapes the rune that follows it: both are copied through
// undecoded, and an escaped end rune does not terminate the scan.
func (p *Parser) scanDelimited(end rune) (string, error) {
	var buf strings.Builder
	for {
		ch, err := p.cs.Rune()
		if err != nil {
			return "", p.atEOF()
		}
		if ch == end {
			return buf.String(), nil
		}
		buf.WriteRune(ch)
		if ch == '\\' {
			esc, err := p.cs.Rune()
			if err != nil {
				return "", p.atEOF()
			}
			buf.WriteRune(esc)
		}
	}
}

// scanNumber consumes the maximal run of number runes, pushes back the
// terminating rune, and validates the run against the number grammar.
func (p *Parser) scanNumber() (string, error) {
	var buf strings.Builder
	for {
		ch, err := p.cs.Rune()
		if err == io.EOF {
			break
		}
		if !isNumRune(ch) {
			p.cs.Unrune()
			break
		}
		buf.WriteRune(ch)
	}

	// The separator checks come before the whole-string check: a run
	// like "2e3" or "21e" matches only its leading digits, leaving the
	// exponent group empty, and is reported against its separator.
	text := buf.String()
	m := numberRE.FindStringSubmatch(text)
	if m == nil {
		return "", p.failf(MalformedNumber, "malformed number %q", text)
	}
	if strings.ContainsRune(text, '.') && m[1] == "" {
		return "", p.failSep(text, '.')
	}
	if strings.ContainsRune(text, 'e') && (m[2] == "" || m[2] == "-") {
		return "", p.failSep(text, 'e')
	}
	if m[0] != text {
		return "", p.failf(MalformedNumber, "malformed number %q", text)
	}
	return text, nil
}

func (p *Parser) failSep(text string, sep rune) *ParseError {
	e := p.failf(NumberSeparator, "number %q has no digits after %q", text, string(sep))
	e.Sep = sep
	return e
}
