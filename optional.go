package chip

// OptionalValue wraps a value that may be absent. The zero
// OptionalValue is the absent optional.
type OptionalValue struct {
	Inner Value
}

// NewOptionalValue returns an OptionalValue wrapping inner. A nil
// inner yields the absent optional.
func NewOptionalValue(inner Value) OptionalValue {
	return OptionalValue{Inner: inner}
}

// V returns the inner value, nil when absent.
func (v OptionalValue) V() any {
	if v.Inner == nil {
		return nil
	}
	return v.Inner
}

func (v OptionalValue) Type() Type {
	return TypeOptional
}

func (v OptionalValue) String() string {
	t, _ := v.MarshalText()
	return string(t)
}

func (v OptionalValue) MarshalText() ([]byte, error) {
	if v.Inner == nil {
		return []byte("null"), nil
	}
	return v.Inner.MarshalText()
}

// MarshalJSON renders the inner value, or null when absent. The
// wrapping itself does not survive the JSON projection.
func (v OptionalValue) MarshalJSON() ([]byte, error) {
	if v.Inner == nil {
		return []byte("null"), nil
	}
	return v.Inner.MarshalJSON()
}
