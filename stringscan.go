package jeyson

import (
	"strings"
	"unicode/utf16"
)

var simpleEscapes = map[rune]rune{
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'"': '"',
	'\\': '\\',
	'/': '/',
}

// AdvanceString consumes a grammar-conformant JSON string (spec.md §4.3)
// starting at the cursor, decoding escapes into a strings.Builder sink it
// returns. On success the cursor is left just past the closing quotation
// mark and matched is true. If the cursor isn't at a quotation mark legal
// under policy at all, this is a recoverable mismatch: matched is false,
// err is nil, and the cursor is untouched. Otherwise a hard failure is
// reported: matched is true, err is non-nil (ErrUnbalancedQuote,
// ErrBadEscapedChar, or ErrBadEncodedChar), and the cursor is left at the
// point of detection (§4.13).
func AdvanceString(c *Cursor, policy Policy) (value string, matched bool, err *Error) {
	var sink strings.Builder
	startPos := c.Pos

	open, ok := c.Peek()
	if !ok || !IsQuotationMark(open, policy) {
		return "", false, nil // recoverable mismatch: not a string at all
	}
	c.Next()

	var pendingHighSurrogate rune
	havePending := false

	flushPending := func() {
		if havePending {
			sink.WriteRune(pendingHighSurrogate)
			havePending = false
		}
	}

	for {
		r, ok := c.Next()
		if !ok {
			return "", true, newError(ErrUnbalancedQuote, c, startPos, "string starting at offset %d never closed", startPos)
		}

		if r == open {
			flushPending()
			return sink.String(), true, nil
		}

		if r == '\\' {
			esc, ok := c.Next()
			if !ok {
				return "", true, newError(ErrUnbalancedQuote, c, startPos, "string starting at offset %d never closed", startPos)
			}

			switch {
			case esc == 'u':
				v, ok := AdvanceEncodedChar(c)
				if !ok {
					return "", true, newError(ErrBadEncodedChar, c, c.Pos, "\\u not followed by four hex digits")
				}
				if utf16.IsSurrogate(v) {
					if havePending {
						if combined := utf16.DecodeRune(pendingHighSurrogate, v); combined != 0xFFFD {
							sink.WriteRune(combined)
							havePending = false
							continue
						}
						// Two surrogates in a row that don't combine:
						// emit the first verbatim and keep going.
						sink.WriteRune(pendingHighSurrogate)
					}
					pendingHighSurrogate = v
					havePending = true
					continue
				}
				if havePending {
					combined := utf16.DecodeRune(pendingHighSurrogate, v)
					havePending = false
					if combined != 0xFFFD {
						sink.WriteRune(combined)
						continue
					}
					sink.WriteRune(pendingHighSurrogate)
				}
				sink.WriteRune(v)
			case esc == '\'':
				if open != '\'' {
					return "", true, newError(ErrBadEscapedChar, c, c.Pos-1, "\\' is only legal inside a single-quoted string")
				}
				flushPending()
				sink.WriteRune('\'')
			default:
				if decoded, ok := simpleEscapes[esc]; ok {
					flushPending()
					sink.WriteRune(decoded)
				} else if policy.AllowAnyCharEscaped {
					flushPending()
					sink.WriteRune(esc)
				} else {
					return "", true, newError(ErrBadEscapedChar, c, c.Pos-1, "unrecognized escape \\%c", esc)
				}
			}
			continue
		}

		flushPending()
		sink.WriteRune(r)
	}
}
