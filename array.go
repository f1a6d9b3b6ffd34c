package chip

import "bytes"

// ArrayValue is an ordered sequence of values.
type ArrayValue []Value

// NewArrayValue returns an ArrayValue of the given elements.
func NewArrayValue(vs ...Value) ArrayValue {
	return ArrayValue(vs)
}

func (v ArrayValue) V() any {
	return []Value(v)
}

func (v ArrayValue) Type() Type {
	return TypeArray
}

func (v ArrayValue) String() string {
	t, _ := v.MarshalText()
	return string(t)
}

func (v ArrayValue) MarshalText() ([]byte, error) {
	return v.MarshalJSON()
}

func (v ArrayValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if e == nil {
			buf.WriteString("null")
			continue
		}
		b, err := e.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
