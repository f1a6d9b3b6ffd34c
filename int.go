package chip

import "strconv"

// Int64Value is a 64-bit signed integer.
type Int64Value int64

// NewInt64Value returns an Int64Value.
func NewInt64Value(x int64) Int64Value {
	return Int64Value(x)
}

func (v Int64Value) V() any {
	return int64(v)
}

func (v Int64Value) Type() Type {
	return TypeInt64
}

func (v Int64Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v Int64Value) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(v), 10), nil
}

func (v Int64Value) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

// Int32Value is a 32-bit signed integer.
type Int32Value int32

// NewInt32Value returns an Int32Value.
func NewInt32Value(x int32) Int32Value {
	return Int32Value(x)
}

func (v Int32Value) V() any {
	return int32(v)
}

func (v Int32Value) Type() Type {
	return TypeInt32
}

func (v Int32Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v Int32Value) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(v), 10), nil
}

func (v Int32Value) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

// Uint8Value is an unsigned byte carried in a dedicated payload byte.
// Any byte value fits, unlike SmallUint8Value.
type Uint8Value uint8

// NewUint8Value returns a Uint8Value.
func NewUint8Value(x uint8) Uint8Value {
	return Uint8Value(x)
}

func (v Uint8Value) V() any {
	return uint8(v)
}

func (v Uint8Value) Type() Type {
	return TypeUint8
}

func (v Uint8Value) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

func (v Uint8Value) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(v), 10), nil
}

func (v Uint8Value) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

// SmallUint8Value is an unsigned byte packed directly into the tag
// byte on the wire. Construction does not validate; values above
// MaxSmallUint8 are rejected when encoded.
type SmallUint8Value uint8

// NewSmallUint8Value returns a SmallUint8Value.
func NewSmallUint8Value(x uint8) SmallUint8Value {
	return SmallUint8Value(x)
}

func (v SmallUint8Value) V() any {
	return uint8(v)
}

func (v SmallUint8Value) Type() Type {
	return TypeSmallUint8
}

func (v SmallUint8Value) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

func (v SmallUint8Value) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(v), 10), nil
}

func (v SmallUint8Value) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}
