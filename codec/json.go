package codec

import (
	"bytes"
	"encoding/json"

	gojson "github.com/goccy/go-json"
)

// Default is the default codec used by the library.
var Default Codec = GoJSON{}

// JSON is the standard-library JSON codec.
//
// Types that implement json.Marshaler and json.Unmarshaler, such as
// checkedint.Int, control their own shape.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error {
	if !json.Valid(data) {
		// Report the syntax error without touching v.
		var raw json.RawMessage
		return json.Unmarshal(data, &raw)
	}
	return decodeNumbers(json.NewDecoder(bytes.NewReader(data)), v)
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// Output is byte-compatible with JSON for the same input.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error {
	if !gojson.Valid(data) {
		var raw gojson.RawMessage
		return gojson.Unmarshal(data, &raw)
	}
	return decodeNumbers(gojson.NewDecoder(bytes.NewReader(data)), v)
}

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

type numberDecoder interface {
	UseNumber()
	Decode(v any) error
}

// decodeNumbers decodes a single validated document. Numbers landing in
// interface values stay json.Number so integers wider than 53 bits are exact.
func decodeNumbers(dec numberDecoder, v any) error {
	dec.UseNumber()
	return dec.Decode(v)
}
