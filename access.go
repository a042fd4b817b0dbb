package jeyson

import "math"

// Index returns a write-through reference to element i of an array Value
// (spec.md §4.10): if v is Null it is first promoted to an empty Array; if
// i is past the current end, default (Null) elements are appended until i
// is addressable. Any other kind raises ErrIncompatibleType.
func (v *Value) Index(i int) (*Value, *Error) {
	if v.IsNull() {
		v.kind = Array
		v.arrayValue = []*Value{}
	}
	if !v.IsArray() {
		return nil, valueError(ErrIncompatibleType, "cannot index a %s value", v.Kind())
	}
	if i < 0 {
		return nil, valueError(ErrOutOfRange, "negative index %d", i)
	}
	for i >= len(v.arrayValue) {
		v.arrayValue = append(v.arrayValue, NewNull())
	}
	return v.arrayValue[i], nil
}

// At returns element i of an array Value without growing it. Spec.md §4.10
// leaves const out-of-range access undefined; this implementation resolves
// that Open Question to an explicit ErrOutOfRange (see DESIGN.md).
func (v *Value) At(i int) (*Value, *Error) {
	if !v.IsArray() {
		return nil, valueError(ErrIncompatibleType, "cannot index a %s value", v.Kind())
	}
	if i < 0 || i >= len(v.arrayValue) {
		return nil, valueError(ErrOutOfRange, "index %d out of range (len %d)", i, len(v.arrayValue))
	}
	return v.arrayValue[i], nil
}

// AtOrNull is the teacher's fluent convention (mcvoid-json/json.go's
// Index method): it returns a fresh Null Value instead of an error when i
// is out of range or v is not an array.
func (v *Value) AtOrNull(i int) *Value {
	e, err := v.At(i)
	if err != nil {
		return NewNull()
	}
	return e
}

// Key returns a write-through reference to member key of an object Value
// (spec.md §4.10): if v is Null it is first promoted to an empty Object; if
// key is absent, a Null value is inserted under it. Any other kind raises
// ErrIncompatibleType.
func (v *Value) Key(key string) (*Value, *Error) {
	if v.IsNull() {
		v.kind = Object
		v.objectValue = []pair{}
	}
	if !v.IsObject() {
		return nil, valueError(ErrIncompatibleType, "cannot key-index a %s value", v.Kind())
	}
	if idx := v.findPair(key); idx >= 0 {
		return v.objectValue[idx].val, nil
	}
	nv := NewNull()
	v.objectValue = append(v.objectValue, pair{key: key, val: nv})
	return nv, nil
}

// Field returns member key of an object Value without inserting anything.
// Spec.md §4.10 leaves const absent-key access undefined; this
// implementation resolves that Open Question to an explicit ErrOutOfRange
// (see DESIGN.md).
func (v *Value) Field(key string) (*Value, *Error) {
	if !v.IsObject() {
		return nil, valueError(ErrIncompatibleType, "cannot key-index a %s value", v.Kind())
	}
	if idx := v.findPair(key); idx >= 0 {
		return v.objectValue[idx].val, nil
	}
	return nil, valueError(ErrOutOfRange, "no member %q", key)
}

// FieldOrNull is the teacher's fluent convention (mcvoid-json/json.go's Key
// method): it returns a fresh Null Value instead of an error when key is
// absent or v is not an object.
func (v *Value) FieldOrNull(key string) *Value {
	e, err := v.Field(key)
	if err != nil {
		return NewNull()
	}
	return e
}

// Size returns: 0 for Null; 1 for any scalar; the element/member count for
// Array/Object.
func (v *Value) Size() int {
	switch v.Kind() {
	case Null:
		return 0
	case Array:
		return len(v.arrayValue)
	case Object:
		return len(v.objectValue)
	default:
		return 1
	}
}

// Empty reports Size() == 0.
func (v *Value) Empty() bool { return v.Size() == 0 }

// MaxSize returns: 0 for Null; 1 for any scalar; for Array/Object, the
// largest index/count this implementation's backing slice could address
// (there is no compile-time container capacity in Go the way there is for
// std::vector<T>::max_size, so this reports math.MaxInt as the practical
// ceiling).
func (v *Value) MaxSize() int {
	switch v.Kind() {
	case Null:
		return 0
	case Array, Object:
		return math.MaxInt
	default:
		return 1
	}
}

// Clear resets scalars to their zero value (boolean to false, numerics to
// 0, string to empty) and empties aggregates; a Null value is left
// unchanged. The Kind never changes.
func (v *Value) Clear() {
	switch v.kind {
	case Bool:
		v.boolValue = false
	case Integer:
		v.intValue = 0
	case UInteger:
		v.uintValue = 0
	case Real:
		v.realValue = 0
	case String:
		v.stringValue = ""
	case Array:
		v.arrayValue = v.arrayValue[:0]
	case Object:
		v.objectValue = v.objectValue[:0]
	}
}

// PushBack appends x to an array Value (spec.md §4.10): on Null, v is
// first promoted to an empty Array. Appending to any other kind raises
// ErrIncompatibleType; appending a nil x raises ErrInvalidArgument (the Go
// analogue of "appending an uninitialized value").
func (v *Value) PushBack(x *Value) *Error {
	if x == nil {
		return valueError(ErrInvalidArgument, "cannot push_back an uninitialized value")
	}
	if v.IsNull() {
		v.kind = Array
		v.arrayValue = []*Value{}
	}
	if !v.IsArray() {
		return valueError(ErrIncompatibleType, "cannot push_back onto a %s value", v.Kind())
	}
	v.arrayValue = append(v.arrayValue, x)
	return nil
}

// Append is a synonym for PushBack (spec.md §4.10's "+=").
func (v *Value) Append(x *Value) *Error { return v.PushBack(x) }
