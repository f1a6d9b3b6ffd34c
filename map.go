package chip

import (
	"bytes"
	"strconv"
)

// Pair is a single key/value entry of a MapValue.
type Pair struct {
	Key   Value
	Value Value
}

// MapValue is an ordered list of key/value pairs. Keys are not
// deduplicated: order and duplicates survive encoding and decoding
// untouched, no map semantics are imposed.
type MapValue []Pair

// NewMapValue returns a MapValue of the given pairs.
func NewMapValue(pairs ...Pair) MapValue {
	return MapValue(pairs)
}

func (v MapValue) V() any {
	return []Pair(v)
}

func (v MapValue) Type() Type {
	return TypeMap
}

func (v MapValue) String() string {
	t, _ := v.MarshalText()
	return string(t)
}

func (v MapValue) MarshalText() ([]byte, error) {
	return v.MarshalJSON()
}

// MarshalJSON renders the pairs as a JSON object. Keys that are not
// text use their own JSON form as the member name.
func (v MapValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalJSONKey(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if p.Value == nil {
			buf.WriteString("null")
			continue
		}
		b, err := p.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalJSONKey(k Value) ([]byte, error) {
	if k == nil {
		return []byte(`"null"`), nil
	}
	b, err := k.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == '"' {
		return b, nil
	}
	return []byte(strconv.Quote(string(b))), nil
}
