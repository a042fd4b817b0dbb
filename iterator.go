package jeyson

// Iterator is a forward iterator over a Value (spec.md §4.11): for an Array
// it walks the native element order; for an Object it walks the native
// member order, dereferencing to the mapped value (the key is available
// via Key when the iterator is object-bound); for a scalar or Null it is a
// single-step iterator whose one position denotes the value itself.
//
// Re-architected per spec.md §9 ("store one of several native iterator
// types... as a sum of iterator states") as a single struct carrying the
// bound Value, its Kind, and a position index, dispatching on Kind.
//
// Reverse iteration (rbegin/rend) is out of scope (spec.md §1).
type Iterator struct {
	owner *Value
	kind  Kind
	idx   int
}

// Begin returns an iterator positioned at v's first element (Array/Object),
// at v itself (scalar), or already equal to End() (Null).
func (v *Value) Begin() *Iterator {
	return &Iterator{owner: v, kind: v.Kind(), idx: 0}
}

// End returns the sentinel iterator one past v's last position.
func (v *Value) End() *Iterator {
	end := &Iterator{owner: v, kind: v.Kind()}
	switch v.Kind() {
	case Array:
		end.idx = len(v.arrayValue)
	case Object:
		end.idx = len(v.objectValue)
	case Null:
		end.idx = 0
	default:
		end.idx = 1
	}
	return end
}

// Done reports whether it has reached v's End().
func (it *Iterator) Done() bool {
	switch it.kind {
	case Array:
		return it.idx >= len(it.owner.arrayValue)
	case Object:
		return it.idx >= len(it.owner.objectValue)
	case Null:
		return true
	default:
		return it.idx >= 1
	}
}

// Next advances the iterator by one position. Advancing a done iterator is
// a no-op, the same as advancing std::vector::end() would be undefined —
// callers should check Done first.
func (it *Iterator) Next() {
	if it.Done() {
		return
	}
	it.idx++
}

// Value dereferences the iterator. For Array/Object it returns the element
// or mapped value at the current position; for a scalar it returns the
// bound Value itself.
func (it *Iterator) Value() *Value {
	switch it.kind {
	case Array:
		return it.owner.arrayValue[it.idx]
	case Object:
		return it.owner.objectValue[it.idx].val
	default:
		return it.owner
	}
}

// Key returns the member name at the iterator's current position and true,
// when the iterator is object-bound; otherwise ("", false).
func (it *Iterator) Key() (string, bool) {
	if it.kind != Object {
		return "", false
	}
	return it.owner.objectValue[it.idx].key, true
}

// Equal reports whether it and other represent the same kind and refer to
// the same position (spec.md §4.11).
func (it *Iterator) Equal(other *Iterator) bool {
	if other == nil {
		return false
	}
	return it.owner == other.owner && it.kind == other.kind && it.idx == other.idx
}
