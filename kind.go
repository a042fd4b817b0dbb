package jeyson

// Kind identifies which of the eight JSON value variants a Value currently
// holds.
type Kind int

// The eight JSON value kinds.
const (
	Null Kind = iota
	Bool
	Integer
	UInteger
	Real
	String
	Array
	Object
	numKinds
)

var kindStrings = [numKinds]string{
	"<null>",
	"<boolean>",
	"<integer>",
	"<uinteger>",
	"<real>",
	"<string>",
	"<array>",
	"<object>",
}

// String returns a human-readable representation of a Kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// isNumeric reports whether k is one of Integer, UInteger, or Real.
func (k Kind) isNumeric() bool {
	return k == Integer || k == UInteger || k == Real
}
