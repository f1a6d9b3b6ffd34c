package chip

import (
	"github.com/chaisql/chip/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Limits of the wire format.
const (
	// MaxFrameSize bounds the encoded size of any nested element: the
	// single length byte of its frame cannot express more. It applies
	// per element, not to the top-level value.
	MaxFrameSize = encoding.MaxFrameSize

	// MaxSmallUint8 is the largest value a SmallUint8Value can encode.
	MaxSmallUint8 = encoding.MaxSmallUint8

	// MaxDepth bounds value nesting, on encoding as well as decoding.
	// Encoding also relies on it to reject cyclic values.
	MaxDepth = 128
)

// Encode encodes v into a fresh buffer.
func Encode(v Value) ([]byte, error) {
	return AppendValue(make([]byte, 0, encoding.ScratchSize), v)
}

// AppendValue encodes v and appends the result to dst.
func AppendValue(dst []byte, v Value) ([]byte, error) {
	return appendValue(dst, v, 0)
}

func appendValue(dst []byte, v Value, depth int) ([]byte, error) {
	if depth > MaxDepth {
		return dst, errors.WithStack(ErrTooDeep)
	}

	switch t := v.(type) {
	case Int64Value:
		return encoding.EncodeInt64(dst, int64(t)), nil
	case Int32Value:
		return encoding.EncodeInt32(dst, int32(t)), nil
	case Uint8Value:
		return encoding.EncodeUint8(dst, uint8(t)), nil
	case SmallUint8Value:
		return encoding.EncodeSmallUint8(dst, uint8(t))
	case Float64Value:
		return encoding.EncodeFloat64(dst, float64(t)), nil
	case Float32Value:
		return encoding.EncodeFloat32(dst, float32(t)), nil
	case BoolValue:
		return encoding.EncodeBool(dst, bool(t)), nil
	case BytesValue:
		return encoding.EncodeBytes(dst, t)
	case ArrayValue:
		return appendArray(dst, t, depth)
	case MapValue:
		return appendMap(dst, t, depth)
	case OptionalValue:
		return appendOptional(dst, t, depth)
	case nil:
		return dst, errors.New("cannot encode nil value")
	}
	return dst, errors.Errorf("cannot encode value of type %T", v)
}

// appendChild encodes child into a scratch buffer with inline capacity
// and appends it to dst as a single length-prefixed frame. The scratch
// spills to the heap when the child outgrows it; correctness does not
// depend on the inline threshold.
func appendChild(dst []byte, child Value, depth int) ([]byte, error) {
	var scratch [encoding.ScratchSize]byte
	buf, err := appendValue(scratch[:0], child, depth)
	if err != nil {
		return dst, err
	}
	return encoding.AppendFrame(dst, buf)
}

func appendArray(dst []byte, a ArrayValue, depth int) ([]byte, error) {
	var err error
	dst = append(dst, encoding.ArrayValue)
	for _, e := range a {
		dst, err = appendChild(dst, e, depth+1)
		if err != nil {
			return dst, err
		}
	}
	return append(dst, encoding.ArrayEndValue), nil
}

func appendMap(dst []byte, m MapValue, depth int) ([]byte, error) {
	var err error
	dst = append(dst, encoding.MapValue)
	for _, p := range m {
		dst, err = appendChild(dst, p.Key, depth+1)
		if err != nil {
			return dst, err
		}
		dst, err = appendChild(dst, p.Value, depth+1)
		if err != nil {
			return dst, err
		}
	}
	return append(dst, encoding.MapEndValue), nil
}

func appendOptional(dst []byte, o OptionalValue, depth int) ([]byte, error) {
	if o.Inner == nil {
		return encoding.EncodeNone(dst), nil
	}
	dst = append(dst, encoding.SomeValue)
	return appendChild(dst, o.Inner, depth+1)
}
