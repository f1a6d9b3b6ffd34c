package chip

import "strconv"

// BoolValue is a boolean.
type BoolValue bool

// NewBoolValue returns a BoolValue.
func NewBoolValue(x bool) BoolValue {
	return BoolValue(x)
}

func (v BoolValue) V() any {
	return bool(v)
}

func (v BoolValue) Type() Type {
	return TypeBool
}

func (v BoolValue) String() string {
	return strconv.FormatBool(bool(v))
}

func (v BoolValue) MarshalText() ([]byte, error) {
	return strconv.AppendBool(nil, bool(v)), nil
}

func (v BoolValue) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}
