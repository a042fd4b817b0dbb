package jeyson

import "io"

// treeBuilder wires Callbacks to construct a *Value tree from a parse,
// maintaining a stack of in-progress aggregates the way a recursive-descent
// parser's call stack would, but flattened into callback handlers since
// Parse drives the walk itself (spec.md §4.8's "a tree builder is just
// another callback consumer").
type treeBuilder struct {
	root    *Value
	stack   []*Value
	pending []string // pending member name per object frame, "" while expecting a name
}

func (b *treeBuilder) attach(v *Value) {
	if len(b.stack) == 0 {
		b.root = v
		return
	}
	top := b.stack[len(b.stack)-1]
	switch top.Kind() {
	case Array:
		top.arrayValue = append(top.arrayValue, v)
	case Object:
		i := len(b.pending) - 1
		key := b.pending[i]
		// Duplicate member names: last occurrence wins (spec.md §9 Open
		// Question), by overwriting the earlier slot rather than appending
		// a second entry under the same key.
		if existing := top.findPair(key); existing >= 0 {
			top.objectValue[existing].val = v
		} else {
			top.objectValue = append(top.objectValue, pair{key: key, val: v})
		}
		b.pending[i] = ""
	}
}

func (b *treeBuilder) push(v *Value) {
	b.attach(v)
	b.stack = append(b.stack, v)
	b.pending = append(b.pending, "")
}

func (b *treeBuilder) pop() {
	b.stack = b.stack[:len(b.stack)-1]
	b.pending = b.pending[:len(b.pending)-1]
}

func (b *treeBuilder) callbacks() Callbacks {
	return Callbacks{
		OnNull:        func() { b.attach(NewNull()) },
		OnTrue:        func() { b.attach(NewBool(true)) },
		OnFalse:       func() { b.attach(NewBool(false)) },
		OnString:      func(s string) { b.attach(NewString(s)) },
		OnMemberName:  func(name string) { b.pending[len(b.pending)-1] = name },
		OnBeginArray:  func() { b.push(&Value{kind: Array, arrayValue: []*Value{}}) },
		OnEndArray:    func() { b.pop() },
		OnBeginObject: func() { b.push(&Value{kind: Object, objectValue: []pair{}}) },
		OnEndObject:   func() { b.pop() },
		OnNumber: func(num interface{}) {
			switch n := num.(type) {
			case int64:
				b.attach(NewInt(n))
			case uint64:
				b.attach(NewUint(n))
			case float64:
				b.attach(NewReal(n))
			}
		},
	}
}

// ParseValue parses s under policy and returns the resulting value tree
// (spec.md §4.8's canonical callback consumer), the convenience entry point
// for callers who want a *Value instead of driving Callbacks by hand.
func ParseValue(s string, policy Policy, opts ...Options) (*Value, *Error) {
	b := &treeBuilder{}
	var parseErr *Error
	cb := b.callbacks()
	cb.OnError = func(err *Error) { parseErr = err }

	Parse(s, policy, cb, opts...)
	if parseErr != nil {
		return nil, parseErr
	}
	return b.root, nil
}

// ParseBytesValue is ParseValue over a byte slice, decoded as UTF-8.
func ParseBytesValue(b []byte, policy Policy, opts ...Options) (*Value, *Error) {
	return ParseValue(string(b), policy, opts...)
}

// ParseReaderValue drains r and is ParseValue over its contents. Streaming
// I/O is out of scope (spec.md §1); this exists only so callers that already
// have an io.Reader don't have to buffer it themselves.
func ParseReaderValue(r io.Reader, policy Policy, opts ...Options) (*Value, *Error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, valueError(ErrInvalidArgument, "reading input: %v", err)
	}
	return ParseValue(string(data), policy, opts...)
}
