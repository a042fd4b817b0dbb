package jeyson

import "fmt"

// ErrorCode is one of the stable failure codes from the recognizer and value
// model's error taxonomy. Codes are stable across releases; switch on Code,
// not on an error's message text.
type ErrorCode int

// The error taxonomy. Success is zero so a zero-valued Error never appears
// as a reported failure.
const (
	Success ErrorCode = iota

	// Recognizer errors, reported through the error sink.
	ErrForbiddenRootElement
	ErrUnbalancedQuote
	ErrBadEscapedChar
	ErrBadEncodedChar
	ErrUnbalancedArrayBracket
	ErrUnbalancedObjectBracket
	ErrBadMemberName
	ErrBadJSONSequence

	// Value-model errors, raised directly to the caller of the offending
	// operation.
	ErrIncompatibleType
	ErrTypeCastError
	ErrInvalidArgument
	ErrOutOfRange
)

var errorCodeStrings = map[ErrorCode]string{
	Success:                    "success",
	ErrForbiddenRootElement:    "forbidden_root_element",
	ErrUnbalancedQuote:         "unbalanced_quote",
	ErrBadEscapedChar:          "bad_escaped_char",
	ErrBadEncodedChar:          "bad_encoded_char",
	ErrUnbalancedArrayBracket:  "unbalanced_array_bracket",
	ErrUnbalancedObjectBracket: "unbalanced_object_bracket",
	ErrBadMemberName:           "bad_member_name",
	ErrBadJSONSequence:         "bad_json_sequence",
	ErrIncompatibleType:        "incompatible_type",
	ErrTypeCastError:           "type_cast_error",
	ErrInvalidArgument:         "invalid_argument",
	ErrOutOfRange:              "out_of_range",
}

// String returns the stable, lowercase snake_case name of the code.
func (c ErrorCode) String() string {
	if s, ok := errorCodeStrings[c]; ok {
		return s
	}
	return "unknown_error"
}

// Error pairs a stable ErrorCode with a human-readable message and, for
// recognizer errors, the rune offset in the input at which the fault was
// detected along with its 1-based Line/Column (computed via Position).
// Line and Column are 0 for value-model errors, which have no associated
// input position.
type Error struct {
	Code   ErrorCode
	Pos    int
	Line   int
	Column int
	msg    string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		if e.msg != "" {
			return fmt.Sprintf("%s: %s", e.Code, e.msg)
		}
		return e.Code.String()
	}
	if e.msg != "" {
		return fmt.Sprintf("%s at line %d, column %d: %s", e.Code, e.Line, e.Column, e.msg)
	}
	return fmt.Sprintf("%s at line %d, column %d", e.Code, e.Line, e.Column)
}

// newError builds a recognizer error at the given cursor's current rune
// buffer and pos, with Line/Column computed via Position so callers of
// Parse get a human-navigable location instead of a bare rune offset.
func newError(code ErrorCode, c *Cursor, pos int, format string, args ...interface{}) *Error {
	line, column := Position(c.runes, pos)
	return &Error{Code: code, Pos: pos, Line: line, Column: column, msg: fmt.Sprintf(format, args...)}
}

// valueError builds a value-model error with no associated input position.
func valueError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Pos: -1, msg: fmt.Sprintf(format, args...)}
}
