package jeyson

// IsWhitespace reports whether c is one of the four JSON whitespace
// characters: space, tab, line feed, carriage return.
func IsWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit reports whether c is an ASCII hex digit (either case).
func IsHexDigit(c rune) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// digitValues maps an ASCII byte to its digit value in the largest radix we
// support (36), or -1 if the byte is not alphanumeric. Built once, indexed
// directly — the same array-lookup-table technique the teacher uses for its
// asciiClasses table.
var digitValues = buildDigitValues()

func buildDigitValues() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = -1
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = int8(c - '0')
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = int8(c-'a') + 10
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = int8(c-'A') + 10
	}
	return t
}

// ToDigit returns the digit value of c in the given radix (2..36), or -1 if
// c is not a legal digit in that radix.
func ToDigit(c rune, radix int) int {
	if radix < 2 || radix > 36 {
		return -1
	}
	if c < 0 || c >= 128 {
		return -1
	}
	v := digitValues[c]
	if v < 0 || int(v) >= radix {
		return -1
	}
	return int(v)
}

// IsQuotationMark reports whether c opens/closes a string under policy: '"'
// always, and also '\'' when policy.AllowSingleQuoteMark is set.
func IsQuotationMark(c rune, policy Policy) bool {
	if c == '"' {
		return true
	}
	return c == '\'' && policy.AllowSingleQuoteMark
}

// skipWhitespace advances the cursor past any run of JSON whitespace.
func skipWhitespace(c *Cursor) {
	for {
		r, ok := c.Peek()
		if !ok || !IsWhitespace(r) {
			return
		}
		c.Next()
	}
}
