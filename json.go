package chip

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// FromJSON converts a JSON document to a Value: null becomes the
// absent optional, booleans BoolValue, numbers Int64Value when they
// fit and Float64Value otherwise, strings BytesValue, arrays
// ArrayValue and objects MapValue with text keys in document order.
func FromJSON(data []byte) (Value, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}
	return parseJSONValue(dataType, value)
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (Value, error) {
	switch dataType {
	case jsonparser.Null:
		return OptionalValue{}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return NewBoolValue(b), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// if it's too big to fit in an int64, let's try parsing this as a floating point number
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}

			return NewFloat64Value(f), nil
		}

		return NewInt64Value(i), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return NewTextValue(s), nil
	case jsonparser.Array:
		var a ArrayValue
		var innerErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			if innerErr != nil {
				return
			}
			v, err := parseJSONValue(dataType, value)
			if err != nil {
				innerErr = err
				return
			}
			a = append(a, v)
		})
		if err != nil {
			return nil, err
		}
		if innerErr != nil {
			return nil, innerErr
		}
		return a, nil
	case jsonparser.Object:
		var m MapValue
		err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
			v, err := parseJSONValue(dataType, value)
			if err != nil {
				return err
			}
			m = append(m, Pair{Key: NewTextValue(string(key)), Value: v})
			return nil
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	return nil, errors.Errorf("unsupported JSON type %s", dataType)
}
