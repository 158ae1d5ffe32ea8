// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jval"
	"github.com/creachadair/mds/mtest"
)

const testJSON = `{
  "list": [
    {"x": 1},
    {"x": 2}
  ],
  "y": {"hello": "there"},
  "o": ["hi", "yourself"],
  "xyz": {"p": true, "d": true, "q": false}
}`

func TestPath(t *testing.T) {
	v := jval.MustParse(testJSON)

	obj := v.(jval.Object)
	tests := []struct {
		name string
		path []any
		want jval.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{11}, nil, true},
		{"DeepWrongType", []any{"y", "hello", "there"}, nil, true},

		{"ArrayPos", []any{"list", 1},
			obj.Find("list").Value.(jval.Array).Values[1], false},
		{"ArrayNeg", []any{"list", -1},
			obj.Find("list").Value.(jval.Array).Values[1], false},
		{"ArrayRange", []any{"o", 25}, nil, true},
		{"ObjPath", []any{"xyz", "d"},
			obj.Find("xyz").Value.(jval.Object).Find("d").Value, false},
		{"Member", []any{"list", 0, "x"},
			obj.Find("list").Value.(jval.Array).Values[0].(jval.Object).Find("x").Value, false},

		{"BadStep", []any{3.5}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := jval.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
					return
				}
				t.Fatalf("Path: unexpected error: %v", err)
			} else if tc.fail {
				t.Fatalf("Path: got %+v, want error", got)
			}
			// Want and got are nodes of the same tree, so matching source
			// spans identify the same node.
			if got.Span() != tc.want.Span() {
				t.Errorf("Wrong result: got span %+v, want %+v", got.Span(), tc.want.Span())
			}
		})
	}

	t.Run("Func", func(t *testing.T) {
		got, err := jval.Path(v, "o", pickLast)
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		want := obj.Find("o").Value.(jval.Array).Values[1]
		if got.Span() != want.Span() {
			t.Errorf("Wrong result: got span %+v, want %+v", got.Span(), want.Span())
		}
	})
}

func pickLast(v jval.Value) (jval.Value, error) {
	arr, ok := v.(jval.Array)
	if !ok || arr.Len() == 0 {
		return nil, errors.New("not a non-empty array")
	}
	return arr.Values[arr.Len()-1], nil
}

func TestFind(t *testing.T) {
	v := jval.MustParse(`{"a": 1, "b": 2, "a": 3}`)
	obj := v.(jval.Object)

	if obj.Len() != 2 {
		t.Errorf("Len: got %d, want 2 (duplicate keys merge)", obj.Len())
	}
	m := obj.Find("a")
	if m == nil {
		t.Fatal("Find a: no member found")
	}
	if got := m.Value.(jval.Number).Float64(); got != 3 {
		t.Errorf("Find a: got %v, want 3 (last write wins)", got)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find nonesuch: got %+v, want nil", m)
	}
}

func TestDatum(t *testing.T) {
	v := jval.MustParse(`[null, true, false, 76.435e6, "a\tb"]`)
	arr := v.(jval.Array)

	tests := []struct {
		at   int
		text string
	}{
		{0, "null"},
		{1, "true"},
		{2, "false"},
		{3, "76.435e6"},
		{4, `a\tb`}, // raw, escape passed through
	}
	for _, test := range tests {
		d, ok := arr.Values[test.at].(jval.Datum)
		if !ok {
			t.Errorf("Value %d (%T) is not a Datum", test.at, arr.Values[test.at])
			continue
		}
		if got := d.Text(); got != test.text {
			t.Errorf("Text %d: got %#q, want %#q", test.at, got, test.text)
		}
	}

	if b := arr.Values[1].(jval.Bool); !b.Value() {
		t.Error("Value 1: got false, want true")
	}
	if b := arr.Values[2].(jval.Bool); b.Value() {
		t.Error("Value 2: got true, want false")
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, false},
		{`ok go`, "ok go", false},
		{`abc\ndef`, "abc\ndef", false},
		{`\tabc\n`, "\tabc\n", false},
		{`\b\f\n\r\t`, "\b\f\n\r\t", false},
		{`a & b`, "a & b", false},
		{`a\"b`, `a"b`, false},
		{`a\\b\\cd`, `a\b\cd`, false},
		{`a\/b`, `a/b`, false},
		{`a \u0026 b`, "a & b", false}, // short Unicode escape
		{`Aé`, "Aé", false},
		{`\u00x9`, "�", false}, // invalid escape digits
		{`\q`, "�", false},     // invalid escape letter
		{`\`, ``, true},        // incomplete escape
		{`\u00`, ``, true},     // incomplete Unicode escape
	}
	for _, test := range tests {
		got, err := jval.Unescape(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unescape(%#q): unexpected error: %v", test.input, err)
			}
			continue
		} else if test.fail {
			t.Errorf("Unescape(%#q): got %#q, want error", test.input, got)
			continue
		}
		if got != test.want {
			t.Errorf("Unescape(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}

	t.Run("String", func(t *testing.T) {
		s := jval.MustParse(`["say \"hi\"\n"]`).(jval.Array).Values[0].(jval.String)
		if got := s.Text(); got != `say \"hi\"\n` {
			t.Errorf("Text: got %#q, want raw escapes", got)
		}
		dec, err := s.Unescape()
		if err != nil {
			t.Fatalf("Unescape: %v", err)
		}
		if want := "say \"hi\"\n"; dec != want {
			t.Errorf("Unescape: got %#q, want %#q", dec, want)
		}
	})
}

func TestMustParse(t *testing.T) {
	v := jval.MustParse(`{"ok": true}`)
	if v == nil {
		t.Fatal("MustParse: got nil")
	}
	mtest.MustPanic(t, func() { jval.MustParse(`{"ok":`) })
	mtest.MustPanic(t, func() { jval.MustParse(`42`) })
}
