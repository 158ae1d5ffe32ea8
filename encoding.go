// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"github.com/creachadair/jval/internal/escape"

	"go4.org/mem"
)

// Unescape decodes the escape sequences in src, the undecoded body of a
// JSON string without its enclosing quotation marks. The parser stores
// string text with escapes passed through untouched; Unescape is the
// explicit decoding step for callers that need the plain text.
//
// Invalid escapes are replaced by the Unicode replacement rune.
// Unescape reports an error for an escape sequence cut off by the end
// of the text.
func Unescape(src string) (string, error) {
	dec, err := escape.Decode(mem.S(src))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
