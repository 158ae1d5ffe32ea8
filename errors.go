// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import "fmt"

// Kind is the category of a parse failure.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid          Kind = iota // invalid kind
	MissingValue                 // object key not followed by ":" and a value
	NumberSeparator              // "." or "e" in a number with no digits after it
	MalformedNumber              // digit run does not match the number grammar
	MalformedLiteral             // incomplete true, false, or null
	ArraySeparator               // neither "," nor "]" after an array value
	ObjectSeparator              // neither "," nor "}" after an object member
	UnexpectedToken              // no value can start with the lookahead character
	InvalidDocument              // top-level value is not an object or array
	EndOfInput                   // read attempted past the end of the source
	TrailingContent              // content after the document (strict mode only)
	TooDeep                      // nesting exceeds the parser's depth limit
)

var kindStr = [...]string{
	Invalid:          "invalid kind",
	MissingValue:     "missing value",
	NumberSeparator:  "number separator",
	MalformedNumber:  "malformed number",
	MalformedLiteral: "malformed literal",
	ArraySeparator:   "array separator",
	ObjectSeparator:  "object separator",
	UnexpectedToken:  "unexpected token",
	InvalidDocument:  "invalid document",
	EndOfInput:       "end of input",
	TrailingContent:  "trailing content",
	TooDeep:          "nesting too deep",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// ParseError is the concrete type of errors reported by the parser.
type ParseError struct {
	Kind     Kind    // the category of the failure
	Location LineCol // where in the source the failure was detected
	Message  string

	// Sep is the offending separator character for NumberSeparator errors.
	Sep rune

	// Key is the object key missing its value for MissingValue errors.
	Key string

	err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.err }
