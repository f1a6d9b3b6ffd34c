package encoding

import "github.com/cockroachdb/errors"

var (
	// ErrTruncated is returned when decoding needs more bytes than
	// remain in the input.
	ErrTruncated = errors.New("truncated input")

	// ErrUnknownTag is returned when decoding reaches a tag that is not
	// part of the format, including the reserved block.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrFrameOverflow is returned when a nested element or a byte
	// string encodes to more than MaxFrameSize bytes.
	ErrFrameOverflow = errors.New("encoded element exceeds 255 bytes")

	// ErrSmallUint8Range is returned when encoding a small unsigned
	// byte greater than MaxSmallUint8.
	ErrSmallUint8Range = errors.New("small unsigned byte out of range")
)
