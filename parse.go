// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tailscale/hujson"
	"github.com/valyala/fastjson/fastfloat"

	"go4.org/mem"
)

// defaultMaxDepth bounds container nesting so that a pathologically
// deep document fails cleanly instead of exhausting the call stack.
const defaultMaxDepth = 200

// A Parser reads a single JSON document from an in-memory source.
// Each call to Parse consumes one document from the front of the
// source; content after the document is ignored unless StrictTail is
// set.
type Parser struct {
	cs       *Cursor
	strict   bool // reject trailing content after the document
	maxDepth int
	depth    int
}

// NewParser constructs a Parser that reads from source.
func NewParser(source string) *Parser {
	return &Parser{cs: NewCursor(source), maxDepth: defaultMaxDepth}
}

// StrictTail configures the parser to reject (true) or ignore (false)
// non-blank content after the parsed document. The default is false,
// matching the permissive behavior of Parse.
func (p *Parser) StrictTail(ok bool) { p.strict = ok }

// MaxDepth sets the maximum permitted nesting depth of containers.
// The default is 200.
func (p *Parser) MaxDepth(n int) { p.maxDepth = n }

// Parse parses a document from the source. In case of error, the
// returned error has concrete type [*ParseError] and no value is
// returned.
func (p *Parser) Parse() (Value, error) {
	v, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	if p.strict {
		p.skipSpace()
		if ch, err := p.cs.Rune(); err == nil {
			p.cs.Unrune()
			return nil, p.failf(TrailingContent, "unparsed %q after document", ch)
		}
	}
	return v, nil
}

// Parse parses source as a single JSON document, an object or an array.
// Content after the document, if any, is not inspected.
func Parse(source string) (Value, error) { return NewParser(source).Parse() }

// MustParse parses source as Parse does, and panics if parsing fails.
// It is intended for static fixtures whose validity is known.
func MustParse(source string) Value {
	v, err := Parse(source)
	if err != nil {
		panic("jval: " + err.Error())
	}
	return v
}

// ParseFile reads the file at path and parses its contents as a single
// JSON document, trimming any surrounding whitespace. If the file does
// not exist, the returned error wraps fs.ErrNotExist.
func ParseFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(strings.TrimSpace(string(data)))
}

// ParseFileJWCC reads the file at path as JWCC (JSON With Commas and
// Comments), standardizes it to plain JSON, and parses the result as
// ParseFile does.
func ParseFileJWCC(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardize document: %w", err)
	}
	return Parse(strings.TrimSpace(string(std)))
}

// parseDocument consumes the single top-level value of the source,
// which must be an object or an array.
func (p *Parser) parseDocument() (Value, error) {
	p.skipSpace()
	pos := p.cs.Offset()
	ch, err := p.cs.Rune()
	if err != nil {
		return nil, p.atEOF()
	}
	switch ch {
	case '{':
		return p.parseObject(pos)
	case '[':
		return p.parseArray(pos)
	}
	return nil, p.failf(InvalidDocument, "not valid JSON, encountered %q", ch)
}

// parseValue consumes a single value of any type, dispatching on one
// rune of lookahead.
func (p *Parser) parseValue() (Value, error) {
	pos := p.cs.Offset()
	ch, err := p.cs.Rune()
	if err != nil {
		return nil, p.atEOF()
	}
	switch {
	case ch == '{':
		return p.parseObject(pos)
	case ch == '[':
		return p.parseArray(pos)
	case ch == '"':
		text, err := p.scanDelimited('"')
		if err != nil {
			return nil, err
		}
		return String{newDatum(pos, p.cs.Offset(), text)}, nil
	case ch == '-' || isDigit(ch):
		p.cs.Unrune()
		return p.parseNumber(pos)
	case ch == 't':
		if !p.matchLiteral(mem.S("rue")) {
			return nil, p.failf(MalformedLiteral, "invalid literal, want %q", "true")
		}
		return Bool{datum: newDatum(pos, p.cs.Offset(), "true"), value: true}, nil
	case ch == 'f':
		if !p.matchLiteral(mem.S("alse")) {
			return nil, p.failf(MalformedLiteral, "invalid literal, want %q", "false")
		}
		return Bool{datum: newDatum(pos, p.cs.Offset(), "false")}, nil
	case ch == 'n':
		if !p.matchLiteral(mem.S("ull")) {
			return nil, p.failf(MalformedLiteral, "invalid literal, want %q", "null")
		}
		return Null{newDatum(pos, p.cs.Offset(), "null")}, nil
	}
	return nil, p.failf(UnexpectedToken, "no value can start with %q", ch)
}

// parseNumber consumes and validates a digit run, then converts it.
// Precondition: the leading sign or digit is unread.
func (p *Parser) parseNumber(pos int) (Value, error) {
	text, err := p.scanNumber()
	if err != nil {
		return nil, err
	}
	v, err := fastfloat.Parse(text)
	if err != nil {
		return nil, p.failf(MalformedNumber, "malformed number %q", text)
	}
	return Number{datum: newDatum(pos, p.cs.Offset(), text), value: v}, nil
}

// parseArray consumes zero or more comma-separated values.
// Precondition: the opening "[" at pos has been consumed.
func (p *Parser) parseArray(pos int) (Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	arr := Array{pos: pos}
	p.skipSpace()
	p.cs.Mark()
	ch, err := p.cs.Rune()
	if err != nil {
		return nil, p.atEOF()
	}
	if ch == ']' {
		arr.end = p.cs.Offset()
		return arr, nil // empty array
	}
	p.cs.Reset()

	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, v)

		p.skipSpace()
		sep, err := p.cs.Rune()
		if err != nil {
			return nil, p.atEOF()
		}
		switch sep {
		case ']':
			arr.end = p.cs.Offset()
			return arr, nil
		case ',':
			// A close bracket directly after the comma is not recognized
			// here; it falls through to parseValue and fails there.
			p.skipSpace()
		default:
			return nil, p.failf(ArraySeparator, "no comma or closing bracket after array value, got %q", sep)
		}
	}
}

// parseObject consumes zero or more key-value members. Recurring keys
// merge last-write-wins into the accumulated object.
// Precondition: the opening "{" at pos has been consumed.
func (p *Parser) parseObject(pos int) (Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	obj := Object{pos: pos}
	for {
		p.skipSpace()
		ch, err := p.cs.Rune()
		if err != nil {
			return nil, p.atEOF()
		}
		switch ch {
		case '}':
			obj.end = p.cs.Offset()
			return obj, nil
		case '"':
			key, err := p.scanDelimited('"')
			if err != nil {
				return nil, err
			}

			// The separator must follow the key immediately; whitespace is
			// skipped after the colon, not before it.
			if !p.matchLiteral(mem.S(":")) {
				e := p.failf(MissingValue, "no value found after key %q", key)
				e.Key = key
				return nil, e
			}
			p.skipSpace()
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			obj.put(key, v)

			p.skipSpace()
			sep, err := p.cs.Rune()
			if err != nil {
				return nil, p.atEOF()
			}
			switch sep {
			case '}':
				obj.end = p.cs.Offset()
				return obj, nil
			case ',':
				// continue with the next member or close
			default:
				return nil, p.failf(ObjectSeparator, "no comma or closing brace after object field, got %q", sep)
			}
		default:
			return nil, p.failf(UnexpectedToken, "expected key or closing brace, got %q", ch)
		}
	}
}

func (p *Parser) push() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.failf(TooDeep, "nesting exceeds %d levels", p.maxDepth)
	}
	return nil
}

func (p *Parser) pop() { p.depth-- }

func (p *Parser) failf(kind Kind, msg string, args ...any) *ParseError {
	return &ParseError{
		Kind:     kind,
		Location: p.cs.Location(),
		Message:  fmt.Sprintf(msg, args...),
	}
}

func (p *Parser) atEOF() *ParseError {
	e := p.failf(EndOfInput, "unexpected end of input")
	e.err = io.EOF
	return e
}
