package jeyson

// Policy is the fixed set of boolean flags governing grammar relaxations
// and root-element acceptance (spec.md §4.7). All bits default off; use one
// of the preset constructors below rather than a bare Policy{} unless a
// from-scratch policy is genuinely wanted.
type Policy struct {
	AllowObjectRootElement    bool
	AllowArrayRootElement     bool
	AllowNumberRootElement    bool
	AllowStringRootElement    bool
	AllowBooleanRootElement   bool
	AllowNullRootElement      bool
	AllowSingleQuoteMark      bool
	AllowAnyCharEscaped       bool
	AllowPositiveSignedNumber bool
}

// RFC4627 allows only object and array root elements, per RFC 4627's
// stricter `JSON-text = object / array`.
func RFC4627() Policy {
	return Policy{
		AllowObjectRootElement: true,
		AllowArrayRootElement:  true,
	}
}

// RFC7159 allows all six root-element kinds, per RFC 7159's relaxed
// `JSON-text = ws value ws`.
func RFC7159() Policy {
	return Policy{
		AllowObjectRootElement:  true,
		AllowArrayRootElement:   true,
		AllowNumberRootElement:  true,
		AllowStringRootElement:  true,
		AllowBooleanRootElement: true,
		AllowNullRootElement:    true,
	}
}

// JSON5 is RFC7159 plus single-quoted strings.
func JSON5() Policy {
	p := RFC7159()
	p.AllowSingleQuoteMark = true
	return p
}

// Strict is an alias for RFC7159.
func Strict() Policy {
	return RFC7159()
}

// Relaxed is JSON5 plus a leading '+' on numbers and passthrough of unknown
// backslash escapes. This is the default policy for callers that don't pick
// one explicitly.
func Relaxed() Policy {
	p := JSON5()
	p.AllowPositiveSignedNumber = true
	p.AllowAnyCharEscaped = true
	return p
}

// DefaultPolicy returns Relaxed(), the specified default.
func DefaultPolicy() Policy {
	return Relaxed()
}
