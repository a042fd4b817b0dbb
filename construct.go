package jeyson

// NewNull returns a null Value. Equivalent to new(Value) or &Value{}.
func NewNull() *Value { return &Value{kind: Null} }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{kind: Bool, boolValue: b} }

// NewInt returns a signed-integer Value.
func NewInt(i int64) *Value { return &Value{kind: Integer, intValue: i} }

// NewUint returns an unsigned-integer Value.
func NewUint(u uint64) *Value { return &Value{kind: UInteger, uintValue: u} }

// NewReal returns a real (float64) Value.
func NewReal(f float64) *Value { return &Value{kind: Real, realValue: f} }

// NewString returns a string Value.
func NewString(s string) *Value { return &Value{kind: String, stringValue: s} }

// NewStringN returns a string Value built from the first n bytes of s,
// preserving any embedded NUL bytes (spec.md §3: "String payloads may
// contain any host-legal character; embedded NULs are preserved when
// constructed via the length-bearing constructor"). Go strings already
// carry a length rather than being NUL-terminated, so this is a thin
// bounds-checked slice.
func NewStringN(s string, n int) *Value {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return &Value{kind: String, stringValue: s[:n]}
}

// NewArray returns an empty array Value.
func NewArray() *Value { return &Value{kind: Array, arrayValue: []*Value{}} }

// NewObject returns an empty object Value.
func NewObject() *Value { return &Value{kind: Object, objectValue: []pair{}} }

// DeepCopy returns an independent duplicate of v: aggregates are copied
// recursively, so mutating the copy never affects the original or vice
// versa.
func (v *Value) DeepCopy() *Value {
	if v == nil {
		return NewNull()
	}

	cp := *v

	switch v.kind {
	case Array:
		cp.arrayValue = make([]*Value, len(v.arrayValue))
		for i, elem := range v.arrayValue {
			cp.arrayValue[i] = elem.DeepCopy()
		}
	case Object:
		cp.objectValue = make([]pair, len(v.objectValue))
		for i, p := range v.objectValue {
			cp.objectValue[i] = pair{key: p.key, val: p.val.DeepCopy()}
		}
	}

	return &cp
}

// MoveFrom transfers other's contents into v without copying, and resets
// other to Null, so only v retains ownership afterward — the Go analogue of
// C++ move-assignment (spec.md §3's "Lifecycle").
func (v *Value) MoveFrom(other *Value) {
	if other == nil {
		*v = Value{kind: Null}
		return
	}
	*v = *other
	*other = Value{kind: Null}
}
