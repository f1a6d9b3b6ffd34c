package chip

import (
	"math"
	"strconv"
)

// Float64Value is a 64-bit IEEE 754 floating point number.
type Float64Value float64

// NewFloat64Value returns a Float64Value.
func NewFloat64Value(x float64) Float64Value {
	return Float64Value(x)
}

func (v Float64Value) V() any {
	return float64(v)
}

func (v Float64Value) Type() Type {
	return TypeFloat64
}

func (v Float64Value) String() string {
	f := float64(v)
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if abs < 1e-6 || abs >= 1e15 {
			format = 'e'
		}
	}

	// By default the precision is -1 to use the smallest number of digits.
	// See https://pkg.go.dev/strconv#FormatFloat
	prec := -1
	// if the number is round, add .0
	if float64(int64(f)) == f {
		prec = 1
	}
	return strconv.FormatFloat(f, format, prec, 64)
}

func (v Float64Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v Float64Value) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}

// Float32Value is a 32-bit IEEE 754 floating point number.
type Float32Value float32

// NewFloat32Value returns a Float32Value.
func NewFloat32Value(x float32) Float32Value {
	return Float32Value(x)
}

func (v Float32Value) V() any {
	return float32(v)
}

func (v Float32Value) Type() Type {
	return TypeFloat32
}

func (v Float32Value) String() string {
	f := float64(v)
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if abs < 1e-6 || abs >= 1e15 {
			format = 'e'
		}
	}

	prec := -1
	if float64(int64(f)) == f {
		prec = 1
	}
	return strconv.FormatFloat(f, format, prec, 32)
}

func (v Float32Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v Float32Value) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}
