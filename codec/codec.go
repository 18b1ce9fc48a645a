// Package codec centralizes value encoding.
//
// Codecs are selected by a stable name so that stored or transmitted bytes can
// record how they were produced. Changing the codec of existing data is a
// breaking change: bytes written by one codec do not decode with another.
package codec

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Names lists the built-in codec names.
var Names = []string{"json", "go-json", "cbor", "yaml", "msgpack"}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "cbor":
		return CBOR{}, true
	case "yaml":
		return YAML{}, true
	case "msgpack":
		return MsgPack{}, true
	default:
		return nil, false
	}
}

// Binary reports whether c produces non-text output.
func Binary(c Codec) bool {
	switch c.(type) {
	case CBOR, MsgPack:
		return true
	default:
		return false
	}
}

// Supports reports whether c can encode values of v's type. Only MsgPack is
// selective: it needs a msgp.Marshaler or a Record.
func Supports(c Codec, v any) bool {
	if _, ok := c.(MsgPack); !ok {
		return true
	}
	switch v.(type) {
	case msgp.Marshaler, Record:
		return true
	default:
		return false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
