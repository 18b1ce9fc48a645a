package codec

// Record is a value that exposes itself as a flat set of named fields.
//
// Codecs that have no reflection support of their own, such as MsgPack, encode
// a Record field by field.
type Record interface {
	FieldNames() []string
	Field(name string) (any, error)
}

// MutableRecord is a Record whose fields can be assigned. SetField is expected
// to validate v and leave the record unchanged on failure.
type MutableRecord interface {
	Record
	SetField(name string, v any) error
}

// Fields returns the fields of r as a map.
func Fields(r Record) (map[string]any, error) {
	names := r.FieldNames()
	m := make(map[string]any, len(names))
	for _, name := range names {
		v, err := r.Field(name)
		if err != nil {
			return nil, err
		}
		m[name] = v
	}
	return m, nil
}
