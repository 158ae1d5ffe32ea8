// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jval implements a reader for JSON documents that produces
// dynamically-typed value trees.
//
// # Parsing
//
// The top-level entry points are Parse, which decodes a complete JSON
// document from a string, and ParseFile, which reads and decodes the
// contents of a file:
//
//	v, err := jval.Parse(`{"name":"Ross","age":21}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// A document must be a JSON object or array; a bare scalar at top level
// is rejected. The result is a Value whose concrete type is one of
// Null, Bool, Number, String, Array, or Object. In case of error, the
// returned error has concrete type [*ParseError], whose Kind field
// discriminates the failure.
//
// For control over parsing options, construct a Parser:
//
//	p := jval.NewParser(input)
//	p.StrictTail(true) // reject trailing content after the document
//	v, err := p.Parse()
//
// # Values
//
// Scalar values record the raw text of their source token. String
// values in particular are stored undecoded: a backslash escape in the
// input is copied through literally. Call the Unescape method to decode
// the text on demand. Numbers are converted to float64 during parsing;
// integer and exponent literals collapse to the same representation.
//
// Object members are unique by key. When a key occurs more than once in
// the input, the later value overwrites the earlier one.
//
// Use Object.Find or the Path helper to navigate a parsed tree:
//
//	age, err := jval.Path(v, "people", 0, "age")
package jval
