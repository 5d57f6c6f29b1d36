package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/little-samo/samo-api/internal/validation"
	"github.com/little-samo/samo-api/pkg/models"
)

var (
	jsonUnmarshaler = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	nullableType    = reflect.TypeOf((*interface{ ElemType() reflect.Type })(nil)).Elem()
	strictType      = reflect.TypeOf((*models.Strict)(nil)).Elem()
	unionType       = reflect.TypeOf((*models.TaggedUnion)(nil)).Elem()
)

type bodyField struct {
	name     string
	typ      reflect.Type
	required bool
	def      string
	hasDef   bool
	coerce   string
}

// bodyFields lists the JSON members of a struct type, following embedded
// structs that carry no json name of their own.
func bodyFields(t reflect.Type) []bodyField {
	var out []bodyField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		name, opts, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			out = append(out, bodyFields(f.Type)...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		def, hasDef := f.Tag.Lookup("default")
		omit := strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero")
		out = append(out, bodyField{
			name:     name,
			typ:      f.Type,
			required: !omit && !hasDef,
			def:      def,
			hasDef:   hasDef,
			coerce:   f.Tag.Get("coerce"),
		})
	}
	return out
}

// walker checks a decoded JSON tree against a Go type before the real
// decode, so every problem is reported with its path. It also fills in
// defaults for absent members.
type walker struct {
	issues []validation.Issue
}

func (w *walker) add(path, code, msg string) {
	w.issues = append(w.issues, validation.Issue{Path: path, Code: code, Message: msg})
}

func join(path, member string) string {
	if path == "" {
		return member
	}
	return path + "." + member
}

func (w *walker) walk(path string, t reflect.Type, v any) any {
	if v == nil {
		if t.Implements(nullableType) {
			return v
		}
		w.add(path, validation.CodeInvalidType, fmt.Sprintf("Expected %s, received null", jsonKind(t)))
		return v
	}

	switch {
	case t.Kind() == reflect.Pointer:
		return w.walk(path, t.Elem(), v)
	case t.Implements(nullableType):
		elem := reflect.New(t).Elem().Interface().(interface{ ElemType() reflect.Type }).ElemType()
		return w.walk(path, elem, v)
	case t.Implements(unionType):
		return w.union(path, t, v)
	case t.Kind() == reflect.Struct && (t.Implements(strictType) || !reflect.PointerTo(t).Implements(jsonUnmarshaler)):
		obj, ok := v.(map[string]any)
		if !ok {
			w.add(path, validation.CodeInvalidType, fmt.Sprintf("Expected object, received %s", received(v)))
			return v
		}
		return w.object(path, t, obj)
	case reflect.PointerTo(t).Implements(jsonUnmarshaler):
		w.leaf(path, t, v)
		return v
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		arr, ok := v.([]any)
		if !ok {
			w.add(path, validation.CodeInvalidType, fmt.Sprintf("Expected array, received %s", received(v)))
			return v
		}
		for i := range arr {
			arr[i] = w.walk(join(path, strconv.Itoa(i)), t.Elem(), arr[i])
		}
		return arr
	case t.Kind() == reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			w.add(path, validation.CodeInvalidType, fmt.Sprintf("Expected object, received %s", received(v)))
			return v
		}
		for k, item := range obj {
			obj[k] = w.walk(join(path, k), t.Elem(), item)
		}
		return obj
	}
	if n, ok := v.(json.Number); ok && isInteger(t) {
		v = integral(n)
	}
	w.leaf(path, t, v)
	return v
}

func (w *walker) object(path string, t reflect.Type, obj map[string]any) any {
	fields := bodyFields(t)
	if t.Implements(strictType) {
		known := make(map[string]bool, len(fields))
		for _, f := range fields {
			known[f.name] = true
		}
		var unknown []string
		for k := range obj {
			if !known[k] {
				unknown = append(unknown, "'"+k+"'")
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			w.add(path, validation.CodeUnrecognizedKeys, "Unrecognized key(s) in object: "+strings.Join(unknown, ", "))
		}
	}
	for _, f := range fields {
		v, ok := obj[f.name]
		if !ok {
			switch {
			case f.hasDef:
				obj[f.name] = defaultValue(f.def)
			case f.required:
				w.add(join(path, f.name), validation.CodeRequired, "Required")
			}
			continue
		}
		if f.coerce == "number" {
			v = coerceNumber(v)
		}
		obj[f.name] = w.walk(join(path, f.name), f.typ, v)
	}
	return obj
}

// coerceNumber reads a numeric string as a number. Blank strings read as 0.
// Anything else is left for the walker to reject.
func coerceNumber(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return json.Number("0")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return v
	}
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
}

func (w *walker) union(path string, t reflect.Type, v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		w.add(path, validation.CodeInvalidType, fmt.Sprintf("Expected object, received %s", received(v)))
		return v
	}
	variants := reflect.New(t).Elem().Interface().(models.TaggedUnion).UnionVariants()
	tag, _ := obj["type"].(string)
	variant, ok := variants[tag]
	if !ok {
		opts := make([]string, 0, len(variants))
		for k := range variants {
			opts = append(opts, "'"+k+"'")
		}
		sort.Strings(opts)
		w.add(join(path, "type"), validation.CodeInvalidUnion,
			"Invalid discriminator value. Expected "+strings.Join(opts, " | "))
		return v
	}
	return w.object(path, variant, obj)
}

// leaf trial-decodes a scalar or a type with its own JSON decoding.
func (w *walker) leaf(path string, t reflect.Type, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		w.add(path, validation.CodeInvalidType, err.Error())
		return
	}
	if err := json.Unmarshal(raw, reflect.New(t).Interface()); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			if n, ok := v.(json.Number); ok && isInteger(t) {
				w.add(path, validation.CodeInvalidType, integerMessage(n))
				return
			}
			w.add(path, validation.CodeInvalidType, fmt.Sprintf("Expected %s, received %s", jsonKind(t), received(v)))
			return
		}
		w.add(path, validation.CodeInvalidType, err.Error())
	}
}

func isInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// integerMessage explains why a JSON number does not fit an integer member.
func integerMessage(n json.Number) string {
	if strings.ContainsAny(string(n), ".eE") {
		return "Expected integer, received float"
	}
	return "Expected integer, received out-of-range number"
}

// maxSafeInteger bounds the integers a float64 represents exactly.
const maxSafeInteger = 1<<53 - 1

// integral rewrites integer-valued numbers such as 1.0 or 1e2 in plain
// integer form so they decode into integer members.
func integral(n json.Number) json.Number {
	if !strings.ContainsAny(string(n), ".eE") {
		return n
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return n
	}
	return json.Number(strconv.FormatInt(int64(f), 10))
}

// defaultValue reads a default tag as JSON and falls back to a plain string.
func defaultValue(def string) any {
	var v any
	dec := json.NewDecoder(strings.NewReader(def))
	dec.UseNumber()
	if err := dec.Decode(&v); err == nil && !dec.More() {
		return v
	}
	return def
}

func received(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Implements(nullableType) {
		t = reflect.New(t).Elem().Interface().(interface{ ElemType() reflect.Type }).ElemType()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return "object"
}
