package jeyson

// advanceSequence tries to consume the exact literal text seq starting at
// the cursor. On full match it advances past seq and returns true; on any
// mismatch it leaves the cursor untouched and returns false. Matching is
// case-sensitive, matching spec.md §4.2 ("uppercase variants fail").
func advanceSequence(c *Cursor, seq string) bool {
	mark := c.Mark()
	for _, want := range seq {
		got, ok := c.Next()
		if !ok || got != want {
			c.Reset(mark)
			return false
		}
	}
	return true
}

// AdvanceNull consumes the four-character literal "null".
func AdvanceNull(c *Cursor) bool {
	return advanceSequence(c, "null")
}

// AdvanceTrue consumes the four-character literal "true".
func AdvanceTrue(c *Cursor) bool {
	return advanceSequence(c, "true")
}

// AdvanceFalse consumes the five-character literal "false".
func AdvanceFalse(c *Cursor) bool {
	return advanceSequence(c, "false")
}

// AdvanceEncodedChar reads exactly four hex digits (a \uXXXX payload,
// without the leading "\u") and returns their value in [0, 0x10000). Fewer
// than four hex digits, or a non-hex character among the first four, fails
// without advancing the cursor.
func AdvanceEncodedChar(c *Cursor) (rune, bool) {
	mark := c.Mark()
	var v rune
	for i := 0; i < 4; i++ {
		r, ok := c.Next()
		if !ok {
			c.Reset(mark)
			return 0, false
		}
		d := ToDigit(r, 16)
		if d < 0 {
			c.Reset(mark)
			return 0, false
		}
		v = v<<4 | rune(d)
	}
	return v, true
}
