package codec

import (
	"errors"
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// ErrUnsupported is returned when a codec cannot handle a value's type.
var ErrUnsupported = errors.New("unsupported type")

// MsgPack is a MessagePack codec backed by github.com/tinylib/msgp.
//
// Values that implement msgp.Marshaler / msgp.Unmarshaler (typically generated
// code) encode themselves. Any other Record is encoded as a map from field
// name to field value, and decoded by passing each field to SetField.
type MsgPack struct{}

// Marshal encodes the value to MessagePack.
func (MsgPack) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case msgp.Marshaler:
		return m.MarshalMsg(nil)
	case Record:
		return appendRecord(nil, m)
	default:
		return nil, fmt.Errorf("codec msgpack: %w: %T", ErrUnsupported, v)
	}
}

// Unmarshal decodes the MessagePack data into v.
//
// The data must hold exactly one object; trailing bytes are rejected before
// v is touched. Records are staged and checked for duplicate, unknown and
// missing fields before any SetField call.
func (MsgPack) Unmarshal(data []byte, v any) error {
	rest, err := msgp.Skip(data)
	if err != nil {
		return fmt.Errorf("codec msgpack: %w", err)
	}
	if len(rest) != 0 {
		return fmt.Errorf("codec msgpack: %d trailing bytes", len(rest))
	}
	switch u := v.(type) {
	case msgp.Unmarshaler:
		_, err = u.UnmarshalMsg(data)
		return err
	case MutableRecord:
		return readRecord(data, u)
	default:
		return fmt.Errorf("codec msgpack: %w: %T", ErrUnsupported, v)
	}
}

// Name returns the unique name of the codec ("msgpack").
func (MsgPack) Name() string { return "msgpack" }

func appendRecord(b []byte, r Record) ([]byte, error) {
	names := r.FieldNames()
	b = msgp.AppendMapHeader(b, uint32(len(names)))
	for _, name := range names {
		v, err := r.Field(name)
		if err != nil {
			return nil, err
		}
		b = msgp.AppendString(b, name)
		if b, err = msgp.AppendIntf(b, v); err != nil {
			return nil, fmt.Errorf("codec msgpack: field %q: %w", name, err)
		}
	}
	return b, nil
}

func readRecord(b []byte, r MutableRecord) error {
	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return fmt.Errorf("codec msgpack: %w", err)
	}
	names := r.FieldNames()
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	staged := make(map[string]any, sz)
	for range sz {
		var (
			name string
			v    any
		)
		if name, b, err = msgp.ReadStringBytes(b); err != nil {
			return fmt.Errorf("codec msgpack: %w", err)
		}
		if v, b, err = msgp.ReadIntfBytes(b); err != nil {
			return fmt.Errorf("codec msgpack: field %q: %w", name, err)
		}
		if !known[name] {
			return fmt.Errorf("codec msgpack: unknown field %q", name)
		}
		if _, dup := staged[name]; dup {
			return fmt.Errorf("codec msgpack: duplicate field %q", name)
		}
		staged[name] = v
	}
	for _, name := range names {
		if _, ok := staged[name]; !ok {
			return fmt.Errorf("codec msgpack: missing field %q", name)
		}
	}
	for _, name := range names {
		if err := r.SetField(name, staged[name]); err != nil {
			return err
		}
	}
	return nil
}
