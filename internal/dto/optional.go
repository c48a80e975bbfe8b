package dto

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field that distinguishes an absent key, an explicit null
// and a value. Update requests use it so that omitted fields stay untouched.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether the payload carried a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// UnmarshalJSON is only invoked when the key is present in the payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
