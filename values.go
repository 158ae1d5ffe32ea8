// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import "fmt"

// A Value is a JSON value parsed from a document. The concrete type of
// a Value is one of Null, Bool, Number, String, Array, or Object.
type Value interface{ Span() Span }

// A Datum is a Value with a text representation.
type Datum interface {
	Value
	Text() string
}

type datum struct {
	pos, end int
	text     string
}

func newDatum(pos, end int, text string) datum {
	return datum{pos: pos, end: end, text: text}
}

// Span satisfies the Value interface.
func (d datum) Span() Span { return Span{Pos: d.pos, End: d.end} }

// Text satisfies the Datum interface.
func (d datum) Text() string { return d.text }

// Null represents the null constant.
type Null struct{ datum }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	datum
	value bool
}

func (b Bool) Value() bool { return b.value }

// A Number is a numeric value. Integer and exponent literals alike are
// converted to float64 during parsing.
type Number struct {
	datum
	value float64
}

func (n Number) Float64() float64 { return n.value }

// A String is a string value. Its text is the raw content between the
// enclosing quotation marks; escape sequences are not decoded.
type String struct{ datum }

// Unescape decodes the escape sequences in the text of s. Invalid
// escapes are replaced by the Unicode replacement rune; an incomplete
// escape at the end of the text reports an error.
func (s String) Unescape() (string, error) { return Unescape(s.text) }

// An Array is an ordered sequence of values.
type Array struct {
	pos, end int

	Values []Value
}

// Span satisfies the Value interface.
func (a Array) Span() Span { return Span{Pos: a.pos, End: a.end} }

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a.Values) }

// An Object is a collection of key-value members. Keys are unique: the
// parser merges a recurring key into its existing member, so at most
// one member exists per key.
type Object struct {
	pos, end int

	Members []*Member
}

// Span satisfies the Value interface.
func (o Object) Span() Span { return Span{Pos: o.pos, End: o.end} }

// Len reports the number of members of o.
func (o Object) Len() int { return len(o.Members) }

// Find returns the member of o with the given key, or nil. Keys are
// compared on their raw (undecoded) text.
func (o Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// put merges a key-value pair into o. A later value for an existing key
// overwrites the earlier one in place.
func (o *Object) put(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	o.Members = append(o.Members, &Member{Key: key, Value: v})
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// A PathFunc is a path step that computes a value from its input.
type PathFunc func(Value) (Value, error)

// Path traverses a sequence of steps from v and returns the value at
// the end of the path. A string step selects the named member of an
// Object; an int step selects an element of an Array, with negative
// indices counting from the end; a PathFunc step computes its result
// directly. Path reports an error if a step does not apply to the value
// reached at that point.
func Path(v Value, steps ...any) (Value, error) {
	cur := v
	for _, step := range steps {
		switch s := step.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T by key %q", cur, s)
			}
			m := obj.Find(s)
			if m == nil {
				return nil, fmt.Errorf("key %q not found", s)
			}
			cur = m.Value
		case int:
			arr, ok := cur.(Array)
			if !ok {
				return nil, fmt.Errorf("cannot index %T", cur)
			}
			i := s
			if i < 0 {
				i += len(arr.Values)
			}
			if i < 0 || i >= len(arr.Values) {
				return nil, fmt.Errorf("index %d out of range for %d elements", s, len(arr.Values))
			}
			cur = arr.Values[i]
		case PathFunc:
			next, err := s(cur)
			if err != nil {
				return nil, err
			}
			cur = next
		case func(Value) (Value, error):
			next, err := s(cur)
			if err != nil {
				return nil, err
			}
			cur = next
		default:
			return nil, fmt.Errorf("invalid path step %T", step)
		}
	}
	return cur, nil
}
