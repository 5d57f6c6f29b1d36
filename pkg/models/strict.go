package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Strict marks shapes whose top-level members are closed: decoding rejects
// any member the struct does not declare.
type Strict interface {
	StrictJSON()
}

// TaggedUnion is implemented by wrappers that decode a "type"-tagged object
// into one of several variant structs. The map is keyed by tag value.
type TaggedUnion interface {
	UnionVariants() map[string]reflect.Type
}

// UnknownKeysError lists object members a strict shape does not declare.
type UnknownKeysError struct {
	Keys []string
}

func (e *UnknownKeysError) Error() string {
	return "unrecognized keys: " + strings.Join(e.Keys, ", ")
}

// JSONFieldNames returns the member names a struct type declares through its
// json tags, following embedded structs.
func JSONFieldNames(t reflect.Type) map[string]bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	names := make(map[string]bool)
	if t.Kind() != reflect.Struct {
		return names
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" {
			for k := range JSONFieldNames(f.Type) {
				names[k] = true
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names[name] = true
	}
	return names
}

// decodeStrict rejects top-level members that dst does not declare and then
// decodes normally. Nested objects keep the lenient behavior.
func decodeStrict(data []byte, dst any) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	known := JSONFieldNames(reflect.TypeOf(dst))
	var unknown []string
	for k := range members {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &UnknownKeysError{Keys: unknown}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
