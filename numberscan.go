package jeyson

import (
	"strconv"
	"strings"
)

// decimalPoint is the rune emitted into the number scanner's textual token
// buffer in place of the grammar's '.' before delegating to strconv. The
// original source queries the current locale's decimal point once per call
// (locale_decimal_point()); this package exposes the same hook as a plain
// package variable rather than pulling in a CLDR-aware formatting library
// for a single-rune lookup (see DESIGN.md).
var decimalPoint rune = '.'

// AdvanceNumber consumes a grammar-conformant JSON number (spec.md §4.4)
// and returns the parsed value as one of int64, uint64, or float64,
// following the type-selection rule: with no fraction/exponent, a '-' sign
// yields int64 and any other sign yields uint64, either falling back to
// float64 on overflow; fraction or exponent always yields float64.
//
// On success the cursor advances exactly past the last consumed digit. On
// failure (no alternative matched, e.g. a lone '+'/'-' or a bare '.') the
// cursor is left unchanged and the second return is false.
func AdvanceNumber(c *Cursor, policy Policy) (interface{}, bool) {
	mark := c.Mark()

	var token strings.Builder
	negative := false

	if r, ok := c.Peek(); ok {
		switch r {
		case '-':
			negative = true
			token.WriteRune('-')
			c.Next()
		case '+':
			if !policy.AllowPositiveSignedNumber {
				c.Reset(mark)
				return nil, false
			}
			c.Next()
		}
	}

	intStart := c.Pos

	if r, ok := c.Peek(); ok && r == '0' {
		token.WriteRune('0')
		c.Next()
	} else {
		for {
			r, ok := c.Peek()
			if !ok || !IsDigit(r) {
				break
			}
			token.WriteRune(r)
			c.Next()
		}
	}

	if c.Pos == intStart {
		c.Reset(mark)
		return nil, false
	}

	isInteger := true

	if r, ok := c.Peek(); ok && r == '.' {
		c.Next()
		if r2, ok := c.Peek(); !ok || !IsDigit(r2) {
			// A '.' not followed by a digit fails the whole number match
			// (original_source's advance_number treats a malformed
			// fraction as a hard failure, not a bare integer).
			c.Reset(mark)
			return nil, false
		}
		isInteger = false
		token.WriteRune(decimalPoint)
		for {
			r2, ok := c.Peek()
			if !ok || !IsDigit(r2) {
				break
			}
			token.WriteRune(r2)
			c.Next()
		}
	}

	if r, ok := c.Peek(); ok && (r == 'e' || r == 'E') {
		expMark := c.Mark()
		c.Next()
		sign := ""
		if r2, ok := c.Peek(); ok && (r2 == '+' || r2 == '-') {
			if r2 == '-' {
				sign = "-"
			}
			c.Next()
		}
		if r2, ok := c.Peek(); !ok || !IsDigit(r2) {
			c.Reset(expMark)
		} else {
			isInteger = false
			token.WriteRune('e')
			token.WriteString(sign)
			for {
				r2, ok := c.Peek()
				if !ok || !IsDigit(r2) {
					break
				}
				token.WriteRune(r2)
				c.Next()
			}
		}
	}

	numstr := token.String()

	if isInteger {
		if !negative {
			if u, err := strconv.ParseUint(numstr, 10, 64); err == nil {
				return u, true
			}
		} else {
			if n, err := strconv.ParseInt(numstr, 10, 64); err == nil {
				return n, true
			}
		}
	}

	realStr := numstr
	if decimalPoint != '.' {
		realStr = strings.Replace(realStr, string(decimalPoint), ".", 1)
	}
	f, err := strconv.ParseFloat(realStr, 64)
	if err != nil {
		c.Reset(mark)
		return nil, false
	}
	return f, true
}
