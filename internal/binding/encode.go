package binding

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Params returns the path parameters of a bound request.
func Params(src any) map[string]string {
	out := map[string]string{}
	v := reflect.Indirect(reflect.ValueOf(src))
	if v.Kind() != reflect.Struct {
		return out
	}
	for _, f := range textFields(v, "param") {
		if s, ok := formatText(f.value); ok {
			out[f.name] = s
		}
	}
	return out
}

// Query returns the canonical query string of a bound request. Optional
// parameters left unset are omitted.
func Query(src any) url.Values {
	out := url.Values{}
	v := reflect.Indirect(reflect.ValueOf(src))
	if v.Kind() != reflect.Struct {
		return out
	}
	for _, f := range textFields(v, "query") {
		if s, ok := formatText(f.value); ok {
			out.Set(f.name, s)
		}
	}
	return out
}

// ExpandPath substitutes {name} segments of a route pattern.
func ExpandPath(pattern string, params map[string]string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(pattern, '{')
		if open < 0 {
			b.WriteString(pattern)
			return b.String()
		}
		end := strings.IndexByte(pattern[open:], '}')
		if end < 0 {
			b.WriteString(pattern)
			return b.String()
		}
		b.WriteString(pattern[:open])
		name := pattern[open+1 : open+end]
		b.WriteString(url.PathEscape(params[name]))
		pattern = pattern[open+end+1:]
	}
}

func formatText(v reflect.Value) (string, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		if v.Kind() == reflect.Slice && v.IsNil() {
			return "", false
		}
		b, err := m.MarshalText()
		if err != nil {
			return "", false
		}
		return string(b), true
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	}
	return fmt.Sprint(v.Interface()), true
}

// HasBody reports whether the request type of src declares JSON body
// members.
func HasBody(src any) bool {
	t := reflect.TypeOf(src)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct && len(bodyFields(t)) > 0
}
