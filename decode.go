package chip

import (
	"github.com/chaisql/chip/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Decode decodes exactly one value spanning all of data. Leftover
// bytes are an error, malformed or truncated input is an error, never
// a panic. Decoded byte strings alias data; copy them if data is
// reused.
func Decode(data []byte) (Value, error) {
	return decodeValue(data, 0)
}

func decodeValue(b []byte, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, errors.WithStack(ErrTooDeep)
	}
	if len(b) == 0 {
		return nil, errors.WithStack(ErrTruncated)
	}

	t := b[0]
	if t >= encoding.SmallUint8Value {
		x, n, err := encoding.DecodeSmallUint8(b)
		return checkExtent(SmallUint8Value(x), n, len(b), err)
	}

	switch t {
	case encoding.Int64Value:
		x, n, err := encoding.DecodeInt64(b)
		return checkExtent(Int64Value(x), n, len(b), err)
	case encoding.BytesValue:
		x, n, err := encoding.DecodeBytes(b)
		return checkExtent(BytesValue(x), n, len(b), err)
	case encoding.ArrayValue:
		return decodeArray(b, depth)
	case encoding.MapValue:
		return decodeMap(b, depth)
	case encoding.TrueValue, encoding.FalseValue:
		x, n, err := encoding.DecodeBool(b)
		return checkExtent(BoolValue(x), n, len(b), err)
	case encoding.Float64Value:
		x, n, err := encoding.DecodeFloat64(b)
		return checkExtent(Float64Value(x), n, len(b), err)
	case encoding.SomeValue:
		return decodeSome(b, depth)
	case encoding.NoneValue:
		return checkExtent(OptionalValue{}, 1, len(b), nil)
	case encoding.Int32Value:
		x, n, err := encoding.DecodeInt32(b)
		return checkExtent(Int32Value(x), n, len(b), err)
	case encoding.Float32Value:
		x, n, err := encoding.DecodeFloat32(b)
		return checkExtent(Float32Value(x), n, len(b), err)
	case encoding.Uint8Value:
		x, n, err := encoding.DecodeUint8(b)
		return checkExtent(Uint8Value(x), n, len(b), err)
	case encoding.ArrayEndValue, encoding.MapEndValue:
		return nil, errors.Wrapf(encoding.ErrUnknownTag, "unexpected end tag %d", t)
	}
	return nil, errors.Wrapf(encoding.ErrUnknownTag, "tag %d", t)
}

// checkExtent enforces that a decoded value spans the whole extent it
// was handed: container frames are exact and Decode consumes its
// entire input, so any slack is an error.
func checkExtent(v Value, n, size int, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, errors.Wrapf(ErrTrailingData, "%d leftover bytes", size-n)
	}
	return v, nil
}

// decodeArray decodes a sequence of framed elements between the start
// tag and the end sentinel. The end sentinel only counts when it is
// the last byte of the extent; anywhere else the byte is a frame
// length, which is what keeps one-byte frame lengths and sentinel
// values from colliding.
func decodeArray(b []byte, depth int) (Value, error) {
	var a ArrayValue
	pos := 1
	for {
		if pos >= len(b) {
			return nil, errors.Wrap(encoding.ErrTruncated, "unterminated array")
		}
		if b[pos] == encoding.ArrayEndValue && pos == len(b)-1 {
			return a, nil
		}
		child, n, err := encoding.DecodeFrame(b[pos:])
		if err != nil {
			return nil, err
		}
		e, err := decodeValue(child, depth+1)
		if err != nil {
			return nil, err
		}
		a = append(a, e)
		pos += n
	}
}

// decodeMap decodes key and value frames pairwise. The end sentinel is
// only looked for at pair boundaries.
func decodeMap(b []byte, depth int) (Value, error) {
	var m MapValue
	pos := 1
	for {
		if pos >= len(b) {
			return nil, errors.Wrap(encoding.ErrTruncated, "unterminated map")
		}
		if b[pos] == encoding.MapEndValue && pos == len(b)-1 {
			return m, nil
		}

		kf, n, err := encoding.DecodeFrame(b[pos:])
		if err != nil {
			return nil, err
		}
		pos += n
		k, err := decodeValue(kf, depth+1)
		if err != nil {
			return nil, err
		}

		vf, n, err := encoding.DecodeFrame(b[pos:])
		if err != nil {
			return nil, err
		}
		pos += n
		v, err := decodeValue(vf, depth+1)
		if err != nil {
			return nil, err
		}

		m = append(m, Pair{Key: k, Value: v})
	}
}

func decodeSome(b []byte, depth int) (Value, error) {
	child, n, err := encoding.DecodeFrame(b[1:])
	if err != nil {
		return nil, err
	}
	if 1+n != len(b) {
		return nil, errors.Wrapf(ErrTrailingData, "%d leftover bytes", len(b)-1-n)
	}
	inner, err := decodeValue(child, depth+1)
	if err != nil {
		return nil, err
	}
	return OptionalValue{Inner: inner}, nil
}
