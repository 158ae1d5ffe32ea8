// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes JSON string escape sequences.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

// Decode interprets the escape sequences in src, the undecoded body of
// a JSON string without its enclosing quotation marks.
//
// Escape sequences are replaced with their unescaped equivalents.
// Invalid escapes are replaced by the Unicode replacement rune. Decode
// reports an error for an escape sequence cut off by the end of input.
func Decode(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		r, n := mem.DecodeRune(src)
		if n == 0 {
			n = 1
		}
		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, ok := parseHex4(src.SliceTo(4))
			if !ok {
				dec = utf8.AppendRune(dec, utf8.RuneError)
			} else {
				dec = utf8.AppendRune(dec, rune(v))
			}
			src = src.SliceFrom(4)
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
	}
}

// parseHex4 decodes exactly four hexadecimal digits.
func parseHex4(data mem.RO) (int, bool) {
	var v int
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int(b - '0')
		case 'a' <= b && b <= 'f':
			v += int(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
