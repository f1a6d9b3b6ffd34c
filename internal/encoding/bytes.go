package encoding

import "github.com/cockroachdb/errors"

// EncodeBytes encodes x as a tag, a single length byte, then the raw
// bytes. Byte strings longer than MaxFrameSize do not fit in the
// length byte and are rejected, never silently truncated.
func EncodeBytes(dst []byte, x []byte) ([]byte, error) {
	if len(x) > MaxFrameSize {
		return dst, errors.Wrapf(ErrFrameOverflow, "byte string of %d bytes", len(x))
	}
	dst = append(dst, BytesValue, byte(len(x)))
	return append(dst, x...), nil
}

// DecodeBytes decodes a byte string from b and returns it along with
// the number of bytes read. The returned slice aliases b. Empty byte
// strings decode as nil.
func DecodeBytes(b []byte) ([]byte, int, error) {
	if len(b) < 2 {
		return nil, 0, errors.WithStack(ErrTruncated)
	}
	l := int(b[1])
	if len(b) < 2+l {
		return nil, 0, errors.WithStack(ErrTruncated)
	}
	if l == 0 {
		return nil, 2, nil
	}
	return b[2 : 2+l], 2 + l, nil
}

// AppendFrame appends child to dst as a length-prefixed frame. Frames
// carry the complete encoding of one nested element; their single
// length byte is what caps nested elements at MaxFrameSize bytes.
func AppendFrame(dst, child []byte) ([]byte, error) {
	if len(child) > MaxFrameSize {
		return dst, errors.Wrapf(ErrFrameOverflow, "element of %d bytes", len(child))
	}
	dst = append(dst, byte(len(child)))
	return append(dst, child...), nil
}

// DecodeFrame reads one length-prefixed frame from b and returns its
// content along with the number of bytes read. The content aliases b.
func DecodeFrame(b []byte) ([]byte, int, error) {
	if len(b) < 1 {
		return nil, 0, errors.WithStack(ErrTruncated)
	}
	l := int(b[0])
	if len(b) < 1+l {
		return nil, 0, errors.WithStack(ErrTruncated)
	}
	return b[1 : 1+l], 1 + l, nil
}
