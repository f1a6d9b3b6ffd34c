package chip

import (
	"sort"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// New converts a Go value to a Value. Plain ints map to Int64Value,
// strings and byte slices to BytesValue, nil to the absent optional.
// Slices and string-keyed maps convert recursively, map keys in sorted
// order for determinism. Values pass through unchanged.
func New(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return OptionalValue{}, nil
	case Value:
		return t, nil
	case bool:
		return NewBoolValue(t), nil
	case int:
		return NewInt64Value(int64(t)), nil
	case int64:
		return NewInt64Value(t), nil
	case int32:
		return NewInt32Value(t), nil
	case uint8:
		return NewUint8Value(t), nil
	case float64:
		return NewFloat64Value(t), nil
	case float32:
		return NewFloat32Value(t), nil
	case string:
		return NewTextValue(t), nil
	case []byte:
		return NewBytesValue(t), nil
	case []Value:
		return NewArrayValue(t...), nil
	case []Pair:
		return NewMapValue(t...), nil
	case []any:
		a := make(ArrayValue, len(t))
		for i := range t {
			v, err := New(t[i])
			if err != nil {
				return nil, err
			}
			a[i] = v
		}
		return a, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		m := make(MapValue, 0, len(t))
		for _, k := range keys {
			v, err := New(t[k])
			if err != nil {
				return nil, err
			}
			m = append(m, Pair{Key: NewTextValue(k), Value: v})
		}
		return m, nil
	}
	return nil, errors.Errorf("unsupported type %T", x)
}

// AsInt64 returns the value held by an Int64Value.
func AsInt64(v Value) (int64, bool) {
	if t, ok := v.(Int64Value); ok {
		return int64(t), true
	}
	return 0, false
}

// AsInt32 returns the value held by an Int32Value.
func AsInt32(v Value) (int32, bool) {
	if t, ok := v.(Int32Value); ok {
		return int32(t), true
	}
	return 0, false
}

// AsUint8 returns the value held by either byte variant.
func AsUint8(v Value) (uint8, bool) {
	switch t := v.(type) {
	case Uint8Value:
		return uint8(t), true
	case SmallUint8Value:
		return uint8(t), true
	}
	return 0, false
}

// AsFloat64 returns the value held by a Float64Value.
func AsFloat64(v Value) (float64, bool) {
	if t, ok := v.(Float64Value); ok {
		return float64(t), true
	}
	return 0, false
}

// AsFloat32 returns the value held by a Float32Value.
func AsFloat32(v Value) (float32, bool) {
	if t, ok := v.(Float32Value); ok {
		return float32(t), true
	}
	return 0, false
}

// AsBool returns the value held by a BoolValue.
func AsBool(v Value) (bool, bool) {
	if t, ok := v.(BoolValue); ok {
		return bool(t), true
	}
	return false, false
}

// AsBytes returns the byte string held by v. The slice is shared, not
// copied.
func AsBytes(v Value) ([]byte, bool) {
	if t, ok := v.(BytesValue); ok {
		return []byte(t), true
	}
	return nil, false
}

// AsText converts a byte string to a string. Byte strings are not
// assumed to hold text, so the conversion validates UTF-8.
func AsText(v Value) (string, error) {
	if v == nil {
		return "", errors.Wrap(ErrInvalidText, "nil value")
	}
	b, ok := v.(BytesValue)
	if !ok {
		return "", errors.Wrapf(ErrInvalidText, "cannot convert %s to text", v.Type())
	}
	if !utf8.Valid(b) {
		return "", errors.WithStack(ErrInvalidText)
	}
	return string(b), nil
}

// AsArray returns the elements of an ArrayValue.
func AsArray(v Value) ([]Value, bool) {
	if t, ok := v.(ArrayValue); ok {
		return []Value(t), true
	}
	return nil, false
}

// AsMap returns the pairs of a MapValue.
func AsMap(v Value) ([]Pair, bool) {
	if t, ok := v.(MapValue); ok {
		return []Pair(t), true
	}
	return nil, false
}

// AsOptional returns the inner value of an optional, nil when absent.
func AsOptional(v Value) (Value, bool) {
	if t, ok := v.(OptionalValue); ok {
		return t.Inner, true
	}
	return nil, false
}

// AsInteger converts any of the integer variants to T, reporting
// whether v held an integer that fits.
func AsInteger[T constraints.Signed](v Value) (T, bool) {
	var x int64
	switch t := v.(type) {
	case Int64Value:
		x = int64(t)
	case Int32Value:
		x = int64(t)
	case Uint8Value:
		x = int64(t)
	case SmallUint8Value:
		x = int64(t)
	default:
		return 0, false
	}
	if int64(T(x)) != x {
		return 0, false
	}
	return T(x), true
}
