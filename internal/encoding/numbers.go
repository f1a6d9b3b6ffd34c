package encoding

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// EncodeInt64 encodes x as a tag followed by its 8-byte little-endian
// two's complement representation.
func EncodeInt64(dst []byte, x int64) []byte {
	return write8(dst, Int64Value, uint64(x))
}

// DecodeInt64 decodes a 64-bit integer from b and returns it along
// with the number of bytes read.
func DecodeInt64(b []byte) (int64, int, error) {
	if len(b) < 9 {
		return 0, 0, errors.WithStack(ErrTruncated)
	}
	return int64(binary.LittleEndian.Uint64(b[1:9])), 9, nil
}

// EncodeInt32 encodes x as a tag followed by its 4-byte little-endian
// two's complement representation.
func EncodeInt32(dst []byte, x int32) []byte {
	return write4(dst, Int32Value, uint32(x))
}

func DecodeInt32(b []byte) (int32, int, error) {
	if len(b) < 5 {
		return 0, 0, errors.WithStack(ErrTruncated)
	}
	return int32(binary.LittleEndian.Uint32(b[1:5])), 5, nil
}

// EncodeUint8 encodes x as a tag followed by one payload byte.
// Unlike the small form, any byte value fits.
func EncodeUint8(dst []byte, x uint8) []byte {
	return write1(dst, Uint8Value, x)
}

func DecodeUint8(b []byte) (uint8, int, error) {
	if len(b) < 2 {
		return 0, 0, errors.WithStack(ErrTruncated)
	}
	return b[1], 2, nil
}

// EncodeSmallUint8 packs x directly into the tag byte. Values above
// MaxSmallUint8 do not fit in the tag block and are rejected.
func EncodeSmallUint8(dst []byte, x uint8) ([]byte, error) {
	if x > MaxSmallUint8 {
		return dst, errors.Wrapf(ErrSmallUint8Range, "value %d", x)
	}
	return append(dst, SmallUint8Value+x), nil
}

func DecodeSmallUint8(b []byte) (uint8, int, error) {
	if len(b) < 1 {
		return 0, 0, errors.WithStack(ErrTruncated)
	}
	return b[0] - SmallUint8Value, 1, nil
}

// EncodeFloat64 encodes x as a tag followed by its IEEE 754 bits in
// little-endian order.
func EncodeFloat64(dst []byte, x float64) []byte {
	return write8(dst, Float64Value, math.Float64bits(x))
}

func DecodeFloat64(b []byte) (float64, int, error) {
	if len(b) < 9 {
		return 0, 0, errors.WithStack(ErrTruncated)
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[1:9])), 9, nil
}

// EncodeFloat32 encodes x as a tag followed by its IEEE 754 bits in
// little-endian order.
func EncodeFloat32(dst []byte, x float32) []byte {
	return write4(dst, Float32Value, math.Float32bits(x))
}

func DecodeFloat32(b []byte) (float32, int, error) {
	if len(b) < 5 {
		return 0, 0, errors.WithStack(ErrTruncated)
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b[1:5])), 5, nil
}
