package chip

// Type represents the type of a value. It is distinct from the wire
// tags: booleans use two tags and small unsigned bytes a whole block.
type Type uint8

const (
	TypeInt64 Type = iota + 1
	TypeInt32
	TypeUint8
	TypeSmallUint8
	TypeFloat64
	TypeFloat32
	TypeBool
	TypeBytes
	TypeArray
	TypeMap
	TypeOptional
)

func (t Type) String() string {
	switch t {
	case TypeInt64:
		return "int64"
	case TypeInt32:
		return "int32"
	case TypeUint8:
		return "uint8"
	case TypeSmallUint8:
		return "small uint8"
	case TypeFloat64:
		return "float64"
	case TypeFloat32:
		return "float32"
	case TypeBool:
		return "bool"
	case TypeBytes:
		return "bytes"
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	case TypeOptional:
		return "optional"
	}
	return "invalid"
}

// Value is a tagged value of one of the wire types. Implementations
// are the concrete types of this package; variants are never merged,
// an Int32Value and an Int64Value holding the same number are
// different values and encode differently.
type Value interface {
	Type() Type
	V() any
	String() string
	MarshalText() ([]byte, error)
	MarshalJSON() ([]byte, error)
}
