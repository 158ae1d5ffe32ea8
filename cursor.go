// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"io"
	"unicode/utf8"
)

// A Cursor is a read cursor over an in-memory source text with a single
// rune of pushback. Reading past the end of the source reports io.EOF
// rather than a sentinel value.
type Cursor struct {
	src  string
	off  int // offset of the next unread byte
	last int // size in bytes of the last-read rune, 0 after pushback

	// Apparent line and column offsets of off, and their values before
	// the last read so that Unrune can restore them.
	line, col   int
	pline, pcol int

	// Saved position for Mark/Reset.
	moff, mline, mcol int
}

// NewCursor constructs a Cursor reading from src.
func NewCursor(src string) *Cursor { return &Cursor{src: src} }

// Rune decodes and consumes the next rune of the source.
// At the end of the source, Rune returns io.EOF.
func (c *Cursor) Rune() (rune, error) {
	if c.off >= len(c.src) {
		c.last = 0
		return 0, io.EOF
	}
	ch, nb := utf8.DecodeRuneInString(c.src[c.off:])
	c.pline, c.pcol = c.line, c.col
	c.off += nb
	c.last = nb
	if ch == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col += nb
	}
	return ch, nil
}

// Unrune pushes back the rune most recently consumed by Rune. Only the
// last-read rune can be pushed back: Unrune has no effect when nothing
// has been read since the last pushback, Reset, or end-of-input report.
func (c *Cursor) Unrune() {
	if c.last == 0 {
		return
	}
	c.off -= c.last
	c.last = 0
	c.line, c.col = c.pline, c.pcol
}

// Mark records the current position of c for a subsequent Reset.
// A new Mark discards any previously recorded position.
func (c *Cursor) Mark() { c.moff, c.mline, c.mcol = c.off, c.line, c.col }

// Reset rewinds c to the most recently marked position, un-reading any
// runes consumed since the mark.
func (c *Cursor) Reset() {
	c.off, c.line, c.col = c.moff, c.mline, c.mcol
	c.last = 0
}

// Offset reports the byte offset of the next unread rune.
func (c *Cursor) Offset() int { return c.off }

// Location reports the line and column of the next unread rune.
func (c *Cursor) Location() LineCol {
	return LineCol{Line: c.line + 1, Column: c.col}
}
