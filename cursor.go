package jeyson

import (
	"bufio"
	"io"
)

// Cursor is a forward-iterable position over an immutable, fully-resident
// rune sequence. It is the concrete stand-in for the original's templated
// ForwardIterator: every advance_* function takes a *Cursor, reads ahead,
// and on failure resets Pos to where it started so the caller can try
// another grammar alternative.
type Cursor struct {
	runes []rune
	Pos   int
}

// NewCursor builds a Cursor over a string.
func NewCursor(s string) *Cursor {
	return &Cursor{runes: []rune(s)}
}

// NewCursorBytes builds a Cursor over a byte slice, decoded as UTF-8.
func NewCursorBytes(b []byte) *Cursor {
	return NewCursor(string(b))
}

// NewCursorReader drains r and builds a Cursor over its contents. Streaming
// I/O is out of scope (spec.md §1); this adapter exists so callers that
// already have an io.Reader don't have to buffer it themselves.
func NewCursorReader(r io.Reader) (*Cursor, error) {
	br := bufio.NewReader(r)
	var runes []rune
	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		runes = append(runes, ch)
	}
	return &Cursor{runes: runes}, nil
}

// Len returns the number of remaining runes.
func (c *Cursor) Len() int {
	return len(c.runes) - c.Pos
}

// AtEnd reports whether the cursor has consumed the whole range.
func (c *Cursor) AtEnd() bool {
	return c.Pos >= len(c.runes)
}

// Peek returns the rune at the cursor without advancing, and whether one
// was available.
func (c *Cursor) Peek() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.runes[c.Pos], true
}

// PeekAt returns the rune offset runes ahead of the cursor (0 == Peek),
// without advancing.
func (c *Cursor) PeekAt(offset int) (rune, bool) {
	i := c.Pos + offset
	if i < 0 || i >= len(c.runes) {
		return 0, false
	}
	return c.runes[i], true
}

// Next returns the rune at the cursor and advances past it.
func (c *Cursor) Next() (rune, bool) {
	r, ok := c.Peek()
	if ok {
		c.Pos++
	}
	return r, ok
}

// Mark saves the current position, for rewinding on a failed grammar
// alternative.
func (c *Cursor) Mark() int {
	return c.Pos
}

// Reset restores a position previously returned by Mark.
func (c *Cursor) Reset(mark int) {
	c.Pos = mark
}

// Remaining returns the not-yet-consumed text, for diagnostics.
func (c *Cursor) Remaining() string {
	return string(c.runes[c.Pos:])
}
