package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Nullable tracks the three states a JSON member can be in: absent, null and
// set. Use it with the `omitzero` json option so absent members stay absent
// when the value is encoded again.
type Nullable[T any] struct {
	Value T
	Valid bool // false when the member was null
	Set   bool // false when the member was absent
}

// Some returns a present, non-null value.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true, Set: true}
}

// Null returns a present null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Ptr returns nil for absent and null values.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// IsZero reports whether the member was absent.
func (n Nullable[T]) IsZero() bool { return !n.Set }

// ElemType exposes T so decoders can walk into the wrapped shape.
func (n Nullable[T]) ElemType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Interface returns a *T holding the value. The pointer is nil for absent
// and null values, which lets validators pair it with omitnil.
func (n Nullable[T]) Interface() any {
	return n.Ptr()
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		n.Value = zero
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// FlexTime is a timestamp that accepts RFC 3339 strings, plain dates
// (2006-01-02) and epoch milliseconds on input. It always encodes as RFC 3339.
type FlexTime struct {
	time.Time
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return t.UnmarshalText([]byte(s))
	}
	ms, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid date %s", b)
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}

func (t *FlexTime) UnmarshalText(b []byte) error {
	s := string(b)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}
