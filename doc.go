// Package jeyson recognizes JSON text and holds parsed JSON values.
//
// The recognizer (Parse, AdvanceValue and the other Advance* functions) is a
// recursive-descent, cursor-based grammar over a Cursor: each Advance*
// function either consumes what it recognizes and reports success, or
// leaves the cursor untouched and reports a recoverable mismatch, so callers
// can try the next grammar alternative without manual backtracking state.
// Hard failures (malformed input, not merely "this alternative doesn't
// apply") are reported as an *Error through the Callbacks sink.
//
// Value is an in-memory JSON value: one of eight kinds (Null, Bool, Integer,
// UInteger, Real, String, Array, Object), with typed accessors (Get[T]) and
// write-through Index/Key navigation for building or editing a tree
// directly, without going through the recognizer at all.
//
// ParseValue ties the two together: it drives Parse with a Callbacks that
// builds a *Value tree, for callers who just want "parse this text into a
// value" rather than driving events by hand. ParseArray[T] and
// ParseObject[T] are narrower convenience front-ends for text already known
// to hold a homogeneous top-level array or object.
package jeyson
