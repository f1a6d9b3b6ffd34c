package encoding

// Tags used to encode values on the wire.
// Each value starts with a 1-byte tag describing its type. Fixed-size
// payloads follow in little-endian order, byte strings carry a single
// length byte, and container elements travel inside 1-byte
// length-prefixed frames between a start and an end sentinel.
// The tag space is frozen: 14 to 19 are reserved and never emitted,
// and a contiguous block at the top of the space packs small unsigned
// bytes directly into the tag.
const (
	// 8-byte little-endian two's complement payload
	Int64Value byte = 0

	// 1 length byte followed by that many raw bytes
	BytesValue byte = 1

	// Containers, delimited by a start and an end sentinel
	ArrayValue    byte = 2
	ArrayEndValue byte = 3
	MapValue      byte = 4
	MapEndValue   byte = 5

	// Booleans, packed into the tag
	TrueValue  byte = 6
	FalseValue byte = 7

	// 8-byte IEEE 754 payload
	Float64Value byte = 8

	// SomeValue is followed by a single framed value
	SomeValue byte = 9
	NoneValue byte = 10

	Int32Value   byte = 11
	Float32Value byte = 12
	Uint8Value   byte = 13

	// 14 to 19: reserved, decoding them is an error

	// Contiguous block of 236 tags.
	// Tags from 20 to 255 represent values from 0 to 235.
	SmallUint8Value byte = 20
)

const (
	// MaxFrameSize is the largest encoded size of a nested element,
	// bound by the single length byte of its frame.
	MaxFrameSize = 255

	// MaxSmallUint8 is the largest value representable in the small
	// unsigned byte tag block.
	MaxSmallUint8 = 255 - SmallUint8Value

	// ScratchSize is the inline capacity of the scratch buffers used to
	// pre-encode container elements before framing.
	ScratchSize = 128
)
