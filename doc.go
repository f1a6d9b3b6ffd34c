/*
Package chip implements a minimal self-describing binary encoding for
tagged values, along with a small persistent store for encoded values.

Values

Every piece of data is a Value: a 64 or 32-bit signed integer, an
unsigned byte (with a compact small form for values up to 235), a 64 or
32-bit float, a boolean, a byte string, an ordered sequence of values,
an ordered list of key/value pairs, or an optional wrapping another
value. Each variant has a concrete type and a constructor:

	v := chip.NewMapValue(
		chip.Pair{Key: chip.NewTextValue("hello"), Value: chip.NewTextValue("world")},
		chip.Pair{Key: chip.NewTextValue("money"), Value: chip.NewInt64Value(6969694200)},
	)

Variants are never merged or repacked: an Int32Value stays an
Int32Value through a round trip, and a Uint8Value is never silently
turned into the small form even when it would fit.

Wire format

A value starts with a single tag byte. Numeric payloads follow in
little-endian order. Byte strings carry one length byte, which caps
them at 255 bytes. Container elements are each encoded separately and
wrapped in a frame of one length byte plus that many bytes; the
container ends with a sentinel tag. Small unsigned bytes and booleans
are packed entirely into the tag.

	b, err := chip.Encode(v)
	...
	v, err := chip.Decode(b)

Because nested elements travel in 1-byte frames, no nested element may
encode to more than MaxFrameSize bytes; Encode reports ErrFrameOverflow
instead of ever truncating. Decode is strict: it consumes the whole
buffer, verifies every sentinel, rejects unknown and reserved tags, and
returns errors instead of panicking on arbitrary input. Decoded byte
strings alias the input buffer.

Nesting is limited to MaxDepth on both sides, which also protects
Encode against values that contain themselves.

JSON

FromJSON converts a JSON document to a Value, and every Value marshals
back to JSON. The JSON projection is lossy: integer widths, the
distinction between the byte variants, and optional wrapping do not
survive it. The binary encoding is the faithful carrier.

Store

A Store persists encoded values under string keys, backed by Pebble:

	store, err := chip.Open("my.db")
	...
	err = store.Put("greeting", chip.NewTextValue("hello"))
	v, err := store.Get("greeting")

The path ":memory:" opens a volatile store, useful for tests.

The chip command line tool in cmd/chip exposes the store and the codec
for scripting and inspection.
*/
package chip
