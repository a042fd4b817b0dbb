package jeyson

// Callbacks is the event sink invoked by the recognizer while it recognizes
// a JSON text (spec.md §4.8, §6). Every field defaults to a no-op via
// NewCallbacks; a caller only sets the handlers it cares about. Structural
// events bracket their contents, and a member name is always delivered
// before its value.
type Callbacks struct {
	OnError func(err *Error)

	OnNull  func()
	OnTrue  func()
	OnFalse func()

	// OnNumber receives whichever of int64, uint64, or float64 the number
	// scanner selected (spec.md §4.4's type-selection rule).
	OnNumber func(num interface{})

	OnString     func(s string)
	OnMemberName func(name string)

	OnBeginArray  func()
	OnEndArray    func()
	OnBeginObject func()
	OnEndObject   func()
}

// NewCallbacks returns a Callbacks with every handler defaulted to a no-op.
func NewCallbacks() Callbacks {
	return Callbacks{
		OnError:       func(*Error) {},
		OnNull:        func() {},
		OnTrue:        func() {},
		OnFalse:       func() {},
		OnNumber:      func(interface{}) {},
		OnString:      func(string) {},
		OnMemberName:  func(string) {},
		OnBeginArray:  func() {},
		OnEndArray:    func() {},
		OnBeginObject: func() {},
		OnEndObject:   func() {},
	}
}

// fillDefaults replaces any nil handler with a no-op, so callers may build a
// Callbacks literal and only set the fields they need.
func (cb *Callbacks) fillDefaults() {
	if cb.OnError == nil {
		cb.OnError = func(*Error) {}
	}
	if cb.OnNull == nil {
		cb.OnNull = func() {}
	}
	if cb.OnTrue == nil {
		cb.OnTrue = func() {}
	}
	if cb.OnFalse == nil {
		cb.OnFalse = func() {}
	}
	if cb.OnNumber == nil {
		cb.OnNumber = func(interface{}) {}
	}
	if cb.OnString == nil {
		cb.OnString = func(string) {}
	}
	if cb.OnMemberName == nil {
		cb.OnMemberName = func(string) {}
	}
	if cb.OnBeginArray == nil {
		cb.OnBeginArray = func() {}
	}
	if cb.OnEndArray == nil {
		cb.OnEndArray = func() {}
	}
	if cb.OnBeginObject == nil {
		cb.OnBeginObject = func() {}
	}
	if cb.OnEndObject == nil {
		cb.OnEndObject = func() {}
	}
}
