package jeyson

// numberToT converts whichever of int64/uint64/float64 the number scanner
// produced into T.
func numberToT[T int | int8 | int16 | int32 | int64 |
	uint | uint8 | uint16 | uint32 | uint64 |
	float32 | float64](num interface{}) T {
	var f float64
	switch n := num.(type) {
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float64:
		f = float64(n)
	}

	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return castFloat[T](f)
	case uint, uint8, uint16, uint32, uint64:
		return castUint[T](uint64(f))
	default:
		return castInt[T](int64(f))
	}
}

// boolToT converts a JSON boolean literal into T's 0/1 representation, the
// same cast get<T> applies to a boolean payload.
func boolToT[T int | int8 | int16 | int32 | int64 |
	uint | uint8 | uint16 | uint32 | uint64 |
	float32 | float64](b bool) T {
	if b {
		return numberToT[T](int64(1))
	}
	return numberToT[T](int64(0))
}

// ParseArray is the typed convenience front-end of spec.md §4.9: it parses
// s, expecting a top-level JSON array, into a []T. If T is string, only
// string elements are captured; otherwise (T numeric) number and boolean
// elements are captured, cast to T. Elements of any other kind, and
// anything nested inside an array/object element, are silently dropped —
// this is documented, pinned behavior (spec.md §4.9), not a bug.
func ParseArray[T int | int8 | int16 | int32 | int64 |
	uint | uint8 | uint16 | uint32 | uint64 |
	float32 | float64 | string](s string, policy Policy) ([]T, *Error) {

	result := []T{}
	depth := 0

	cb := Callbacks{
		OnBeginArray:  func() { depth++ },
		OnEndArray:    func() { depth-- },
		OnBeginObject: func() { depth++ },
		OnEndObject:   func() { depth-- },
	}

	var zero T
	if _, isString := any(zero).(string); isString {
		cb.OnString = func(str string) {
			if depth == 1 {
				result = append(result, any(str).(T))
			}
		}
	} else {
		cb.OnNumber = func(num interface{}) {
			if depth == 1 {
				result = append(result, numberToT[T](num))
			}
		}
		cb.OnTrue = func() {
			if depth == 1 {
				result = append(result, boolToT[T](true))
			}
		}
		cb.OnFalse = func() {
			if depth == 1 {
				result = append(result, boolToT[T](false))
			}
		}
	}
	cb.fillDefaults()

	ctx := &parseContext{policy: policy, cb: cb, logger: DefaultOptions().logger()}
	c := NewCursor(s)
	startPos := c.Pos

	if err := ctx.AdvanceArray(c); err != nil {
		return nil, err
	}
	if c.Pos == startPos {
		return nil, newError(ErrBadJSONSequence, c, startPos, "input is not a JSON array")
	}
	return result, nil
}

// ParseObject is the typed convenience front-end of spec.md §4.9: it parses
// s, expecting a top-level JSON object, into a map[string]T, with the same
// element-type and silent-drop rules as ParseArray.
func ParseObject[T int | int8 | int16 | int32 | int64 |
	uint | uint8 | uint16 | uint32 | uint64 |
	float32 | float64 | string](s string, policy Policy) (map[string]T, *Error) {

	result := map[string]T{}
	depth := 0
	var lastKey string

	cb := Callbacks{
		OnBeginArray:  func() { depth++ },
		OnEndArray:    func() { depth-- },
		OnBeginObject: func() { depth++ },
		OnEndObject:   func() { depth-- },
		OnMemberName: func(name string) {
			if depth == 1 {
				lastKey = name
			}
		},
	}

	var zero T
	if _, isString := any(zero).(string); isString {
		cb.OnString = func(str string) {
			if depth == 1 {
				result[lastKey] = any(str).(T)
			}
		}
	} else {
		cb.OnNumber = func(num interface{}) {
			if depth == 1 {
				result[lastKey] = numberToT[T](num)
			}
		}
		cb.OnTrue = func() {
			if depth == 1 {
				result[lastKey] = boolToT[T](true)
			}
		}
		cb.OnFalse = func() {
			if depth == 1 {
				result[lastKey] = boolToT[T](false)
			}
		}
	}
	cb.fillDefaults()

	ctx := &parseContext{policy: policy, cb: cb, logger: DefaultOptions().logger()}
	c := NewCursor(s)
	startPos := c.Pos

	if err := ctx.AdvanceObject(c); err != nil {
		return nil, err
	}
	if c.Pos == startPos {
		return nil, newError(ErrBadJSONSequence, c, startPos, "input is not a JSON object")
	}
	return result, nil
}
