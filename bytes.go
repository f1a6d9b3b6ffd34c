package chip

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"unicode/utf8"
)

// BytesValue is a byte string. It carries binary payloads as well as
// text; AsText converts one to a string after UTF-8 validation.
type BytesValue []byte

// NewBytesValue returns a BytesValue holding x. The slice is shared,
// not copied.
func NewBytesValue(x []byte) BytesValue {
	return BytesValue(x)
}

// NewTextValue returns a BytesValue holding a copy of s.
func NewTextValue(s string) BytesValue {
	return BytesValue(s)
}

func (v BytesValue) V() any {
	return []byte(v)
}

func (v BytesValue) Type() Type {
	return TypeBytes
}

func (v BytesValue) String() string {
	t, _ := v.MarshalText()
	return string(t)
}

// MarshalText renders valid UTF-8 as a quoted string and anything else
// in the \x hex form.
func (v BytesValue) MarshalText() ([]byte, error) {
	if utf8.Valid(v) {
		return []byte(strconv.Quote(string(v))), nil
	}
	var dst bytes.Buffer
	dst.WriteString("\"\\x")
	_, _ = hex.NewEncoder(&dst).Write(v)
	dst.WriteByte('"')
	return dst.Bytes(), nil
}

// MarshalJSON renders valid UTF-8 as a JSON string and anything else
// as a base64 string.
func (v BytesValue) MarshalJSON() ([]byte, error) {
	if utf8.Valid(v) {
		return []byte(strconv.Quote(string(v))), nil
	}
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(v))+2)
	dst[0] = '"'
	dst[len(dst)-1] = '"'
	base64.StdEncoding.Encode(dst[1:], v)
	return dst, nil
}
