package chip

import (
	"github.com/chaisql/chip/internal/encoding"
	"github.com/cockroachdb/errors"
)

// Errors returned by the codec. The wire-level ones are raised by the
// encoding helpers and re-exported here so that callers can match
// every failure with errors.Is against this package alone.
var (
	// ErrFrameOverflow is returned when a nested element or a byte
	// string encodes to more than MaxFrameSize bytes.
	ErrFrameOverflow = encoding.ErrFrameOverflow

	// ErrSmallUint8Range is returned when encoding a SmallUint8Value
	// greater than MaxSmallUint8.
	ErrSmallUint8Range = encoding.ErrSmallUint8Range

	// ErrTruncated is returned when decoding needs more bytes than
	// remain in the input.
	ErrTruncated = encoding.ErrTruncated

	// ErrUnknownTag is returned when decoding reaches a tag that is not
	// part of the format.
	ErrUnknownTag = encoding.ErrUnknownTag

	// ErrTrailingData is returned by Decode when a complete value is
	// followed by leftover bytes, at the top level or inside a frame.
	ErrTrailingData = errors.New("trailing data after value")

	// ErrTooDeep is returned when a value nests deeper than MaxDepth.
	ErrTooDeep = errors.New("value nested too deep")

	// ErrInvalidText is returned by AsText when the value is not a
	// byte string holding valid UTF-8.
	ErrInvalidText = errors.New("invalid text")
)
