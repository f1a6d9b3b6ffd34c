package encoding

import "github.com/cockroachdb/errors"

func write1(dst []byte, code byte, n uint8) []byte {
	return append(dst, code, n)
}

func write4(dst []byte, code byte, n uint32) []byte {
	return append(
		dst,
		code,
		byte(n),
		byte(n>>8),
		byte(n>>16),
		byte(n>>24),
	)
}

func write8(dst []byte, code byte, n uint64) []byte {
	return append(
		dst,
		code,
		byte(n),
		byte(n>>8),
		byte(n>>16),
		byte(n>>24),
		byte(n>>32),
		byte(n>>40),
		byte(n>>48),
		byte(n>>56),
	)
}

// EncodeBool packs the boolean into its own tag.
func EncodeBool(dst []byte, x bool) []byte {
	if x {
		return append(dst, TrueValue)
	}
	return append(dst, FalseValue)
}

// DecodeBool decodes a boolean from b and returns it along with the
// number of bytes read.
func DecodeBool(b []byte) (bool, int, error) {
	if len(b) < 1 {
		return false, 0, errors.WithStack(ErrTruncated)
	}
	switch b[0] {
	case TrueValue:
		return true, 1, nil
	case FalseValue:
		return false, 1, nil
	}
	return false, 0, errors.Wrapf(ErrUnknownTag, "tag %d", b[0])
}

// EncodeNone appends the absent-optional tag.
func EncodeNone(dst []byte) []byte {
	return append(dst, NoneValue)
}
