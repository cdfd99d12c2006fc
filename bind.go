package jsontree

import gojson "github.com/goccy/go-json"

// Bind decodes a Value into the Go type T through the canonical wire form.
// It is the bridge between the value tree and struct-typed application code.
func Bind[T any](v Value) (T, error) {
	var out T
	if err := gojson.Unmarshal(v.AppendJSON(nil), &out); err != nil {
		return out, err
	}
	return out, nil
}

// FromAny builds a Value tree from arbitrary Go data (maps, slices, structs,
// primitives) by round-tripping through JSON encoding. Struct field order
// follows the encoder's output.
func FromAny(v any) (Value, error) {
	data, err := gojson.Marshal(v)
	if err != nil {
		return Value{}, err
	}
	return Parse(data)
}
