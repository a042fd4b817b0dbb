package jeyson

// Equal implements spec.md §4.12's numerically-aware equality: same-kind
// values compare payload-wise (strings and aggregates recursively); numeric
// values of different kinds are compared by promoting to a common domain
// (signed<->unsigned only match when the signed value is non-negative and
// equal in magnitude; integer<->real compares by exact equality after
// widening the integer); any other cross-kind comparison is unequal.
//
// Grounded on original_source/include/pfs/jeyson/v1/json.hpp's
// operator==.
func Equal(lhs, rhs *Value) bool {
	if lhs == rhs {
		return true
	}
	lk, rk := lhs.Kind(), rhs.Kind()

	if lk != rk {
		switch {
		case lk == Integer && rk == UInteger:
			return lhs.intValue >= 0 && uint64(lhs.intValue) == rhs.uintValue
		case lk == UInteger && rk == Integer:
			return rhs.intValue >= 0 && uint64(rhs.intValue) == lhs.uintValue
		case lk == Integer && rk == Real:
			return float64(lhs.intValue) == rhs.realValue
		case lk == Real && rk == Integer:
			return lhs.realValue == float64(rhs.intValue)
		case lk == UInteger && rk == Real:
			return float64(lhs.uintValue) == rhs.realValue
		case lk == Real && rk == UInteger:
			return lhs.realValue == float64(rhs.uintValue)
		default:
			return false
		}
	}

	switch lk {
	case Null:
		return true
	case Bool:
		return lhs.boolValue == rhs.boolValue
	case Integer:
		return lhs.intValue == rhs.intValue
	case UInteger:
		return lhs.uintValue == rhs.uintValue
	case Real:
		return lhs.realValue == rhs.realValue
	case String:
		return lhs.stringValue == rhs.stringValue
	case Array:
		if len(lhs.arrayValue) != len(rhs.arrayValue) {
			return false
		}
		for i := range lhs.arrayValue {
			if !Equal(lhs.arrayValue[i], rhs.arrayValue[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(lhs.objectValue) != len(rhs.objectValue) {
			return false
		}
		for _, p := range lhs.objectValue {
			idx := rhs.findPair(p.key)
			if idx < 0 || !Equal(p.val, rhs.objectValue[idx].val) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
