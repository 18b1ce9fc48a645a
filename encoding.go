package checkedint

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/fxamacker/cbor/v2"
	gojson "github.com/goccy/go-json"
	"github.com/hupe1980/checkedint/internal/conv"
	"gopkg.in/yaml.v3"
)

// valueField is the name of the single field an Int exposes to encoders.
const valueField = "value"

// record is the structural form of an Int.
type record[T any] struct {
	Value T `json:"value" cbor:"value" yaml:"value"`
}

// FieldNames lists the fields of the structural form of x.
func (x Int[T]) FieldNames() []string { return []string{valueField} }

// Field returns the named field.
func (x Int[T]) Field(name string) (any, error) {
	if name != valueField {
		return nil, fmt.Errorf("checkedint: unknown field %q", name)
	}
	return x.value, nil
}

// SetField range checks v and stores it in the named field. x is unchanged on
// failure.
func (x *Int[T]) SetField(name string, v any) error {
	if name != valueField {
		return fmt.Errorf("checkedint: unknown field %q", name)
	}
	r, err := fromAny[T](v)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// MarshalJSON encodes x as {"value":N}.
func (x Int[T]) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(record[T]{Value: x.value})
}

// UnmarshalJSON decodes {"value":N}. Numbers outside the range of T fail with
// ErrOverflow or ErrUnderflow.
func (x *Int[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var fields map[string]gojson.RawMessage
	if err := gojson.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("checkedint: decode json: %w", err)
	}
	raw, err := single(fields)
	if err != nil {
		return err
	}
	n, ok := new(big.Int).SetString(string(bytes.TrimSpace(raw)), 10)
	if !ok {
		return fmt.Errorf("checkedint: decode json: %q is not a %s", raw, conv.RepOf[T]())
	}
	r, err := FromBig[T](n)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// MarshalCBOR encodes x as the map {"value": N}.
func (x Int[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(record[T]{Value: x.value})
}

// UnmarshalCBOR decodes the map {"value": N}. Bignum-tagged values are
// accepted and classified like any other out-of-range number.
func (x *Int[T]) UnmarshalCBOR(data []byte) error {
	var fields map[string]any
	if err := cbor.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("checkedint: decode cbor: %w", err)
	}
	v, err := single(fields)
	if err != nil {
		return err
	}
	return x.SetField(valueField, v)
}

// MarshalYAML encodes x as a mapping with the single key "value".
func (x Int[T]) MarshalYAML() (any, error) {
	return record[T]{Value: x.value}, nil
}

// UnmarshalYAML decodes a mapping with the single key "value".
func (x *Int[T]) UnmarshalYAML(node *yaml.Node) error {
	var fields map[string]yaml.Node
	if err := node.Decode(&fields); err != nil {
		return fmt.Errorf("checkedint: decode yaml: %w", err)
	}
	v, err := single(fields)
	if err != nil {
		return err
	}
	if v.Kind != yaml.ScalarNode {
		return fmt.Errorf("checkedint: decode yaml: line %d: value is not a scalar", v.Line)
	}
	switch v.ShortTag() {
	case "!!int":
	case "!!float":
		// Integers wider than 64 bits resolve as floats; classify them
		// from their literal. Real fractions and exponents still fail.
		n, ok := new(big.Int).SetString(strings.ReplaceAll(v.Value, "_", ""), 10)
		if !ok {
			return fmt.Errorf("checkedint: decode yaml: line %d: %q is not a %s", v.Line, v.Value, conv.RepOf[T]())
		}
		r, err := FromBig[T](n)
		if err != nil {
			return err
		}
		*x = r
		return nil
	default:
		return fmt.Errorf("checkedint: decode yaml: line %d: %s %q is not a %s", v.Line, v.ShortTag(), v.Value, conv.RepOf[T]())
	}
	r, err := Parse[T](v.Value, 0)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// single returns the value field of a decoded record and rejects any other
// shape.
func single[V any](fields map[string]V) (V, error) {
	var zero V
	v, ok := fields[valueField]
	if !ok {
		return zero, fmt.Errorf("checkedint: missing field %q", valueField)
	}
	if len(fields) != 1 {
		for name := range fields {
			if name != valueField {
				return zero, fmt.Errorf("checkedint: unknown field %q", name)
			}
		}
	}
	return v, nil
}
