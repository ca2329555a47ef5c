package skiplist

import (
	"bytes"
	"cmp"
	"reflect"

	"github.com/facette/natsort"
)

// Compare defines a total order over keys: negative when a orders before b,
// zero when they are equal, positive when a orders after b. The same function
// must be used for the lifetime of one list.
type Compare[K any] func(a, b K) int

// Comparer may be implemented by custom key types to provide their own
// comparison logic for lists built with NaturalOrder.
type Comparer interface {
	Compare(other any) int
}

// NaturalOrder returns a comparator for the key type's natural order. It
// supports the builtin ordered types, []byte (bytewise), and any type
// implementing Comparer. Other key types yield ErrUnsupportedType.
func NaturalOrder[K any]() (Compare[K], error) {
	var zero K
	if naturalCompare(zero, zero) == unsupportedType {
		return nil, ErrUnsupportedType
	}
	return func(a, b K) int { return naturalCompare(a, b) }, nil
}

// unsupportedType marks a key type naturalCompare cannot order. It is outside
// the negative/zero/positive range callers observe.
const unsupportedType = -2

func naturalCompare[K any](a, b K) int {
	switch a := any(a).(type) {
	case int:
		return cmp.Compare(a, any(b).(int))
	case int8:
		return cmp.Compare(a, any(b).(int8))
	case int16:
		return cmp.Compare(a, any(b).(int16))
	case int32:
		return cmp.Compare(a, any(b).(int32))
	case int64:
		return cmp.Compare(a, any(b).(int64))
	case uint:
		return cmp.Compare(a, any(b).(uint))
	case uint8:
		return cmp.Compare(a, any(b).(uint8))
	case uint16:
		return cmp.Compare(a, any(b).(uint16))
	case uint32:
		return cmp.Compare(a, any(b).(uint32))
	case uint64:
		return cmp.Compare(a, any(b).(uint64))
	case uintptr:
		return cmp.Compare(a, any(b).(uintptr))
	case float32:
		return cmp.Compare(a, any(b).(float32))
	case float64:
		return cmp.Compare(a, any(b).(float64))
	case string:
		return cmp.Compare(a, any(b).(string))
	case []byte:
		return bytes.Compare(a, any(b).([]byte))
	case Comparer:
		return a.Compare(any(b))
	default:
		return unsupportedType
	}
}

// Bytewise compares []byte keys lexicographically.
func Bytewise(a, b []byte) int {
	return bytes.Compare(a, b)
}

// NaturalSort orders string keys with natural sorting, so "file2" comes
// before "file10".
func NaturalSort(a, b string) int {
	if a == b {
		return 0
	}
	if natsort.Compare(a, b) {
		return -1
	}
	return 1
}

// Reverse inverts a comparator. Order statistics follow the active
// comparator, so under Reverse(c) Floor returns the largest key by the
// reversed order, not the numerically largest.
func Reverse[K any](compare Compare[K]) Compare[K] {
	return func(a, b K) int { return compare(b, a) }
}

// isNilKey reports whether key is the nil value of a nilable kind. Such keys
// cannot be ordered and are rejected before any traversal.
func isNilKey(key any) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
