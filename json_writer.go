package cgtimport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonField is a key and its already encoded value.
type jsonField struct {
	key   string
	value json.RawMessage
}

// jsonFields encodes a JSON object whose keys keep their insertion order,
// which encoding/json does not offer for maps. The zero value is an empty
// object. The first encoding error sticks and is returned by MarshalJSON.
type jsonFields struct {
	fields []jsonField
	err    error
}

// add encodes value under key.
func (o *jsonFields) add(key string, value any) {
	if o.err != nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("field %q: %w", key, err)
		return
	}
	o.fields = append(o.fields, jsonField{key: key, value: raw})
}

// addNonZero is add, skipped when value is the zero value of its type
// (an empty string, an absent decimal.NullDecimal).
func (o *jsonFields) addNonZero(key string, value any) {
	if v := reflect.ValueOf(value); v.IsValid() && !v.IsZero() {
		o.add(key, value)
	}
}

func (o *jsonFields) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(f.key)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
