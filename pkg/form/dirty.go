package form

import (
	"reflect"
	"strconv"
	"strings"
)

// IsDirty reports whether any tracked field's live value differs from its
// baseline. Fields are checked in serialization order and the first
// differing field is logged for diagnostics.
func (f *Form) IsDirty() bool {
	for _, k := range f.keys {
		if !looseEqual(f.live[k], f.original[k]) {
			f.logger.Debug("form is dirty", "field", k)
			return true
		}
	}
	return false
}

// FieldDirty reports whether the field's live value differs from its
// baseline under loose equality.
func (f *Form) FieldDirty(field string) bool {
	return !looseEqual(f.live[field], f.original[field])
}

// looseEqual compares two field values with type-coercing equality.
//
// Values of the same shape compare by deep equality. Values of different
// types that both coerce to a number (numbers of any width, numeric
// strings, the empty string as zero, booleans as 0/1) compare by their
// numeric value. Everything else is unequal.
//
// The coercion exists because JSON decoding turns every number into a
// float64 while callers write back ints, and because Reset blanks fields
// to "". Tightening this to strict equality would report spurious
// dirtiness across those boundaries.
func looseEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) == reflect.TypeOf(b) {
		return false
	}
	na, aok := toNumber(a)
	nb, bok := toNumber(b)
	return aok && bok && na == nb
}

// toNumber coerces a field value to a float64 where loose equality
// allows: any numeric type, booleans, and strings that parse as numbers.
// A blank string coerces to zero.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
