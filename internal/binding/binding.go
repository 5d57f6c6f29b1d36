// Package binding fills contract request structs from path parameters,
// query values and JSON bodies.
//
// Struct tags drive the work:
//
//	param:"name"             path parameter, always required
//	query:"name[,omitempty]" query parameter
//	json:"name[,omitempty]"  body member
//	default:"..."            value used when the member or parameter is absent
//	coerce:"number"          body member that also accepts a numeric string
//
// Shape problems (missing members, wrong JSON types, unknown members on
// strict objects, bad union tags) come back as a *validation.ValidationError.
// Value rules in `validate` tags are checked separately by validation.Struct.
package binding

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/little-samo/samo-api/internal/validation"
)

// MaxBodyBytes caps request bodies read by Bind.
const MaxBodyBytes = 4 << 20

var (
	// ErrMalformedBody is returned when the body is not valid JSON.
	ErrMalformedBody = errors.New("malformed JSON body")

	// ErrBodyTooLarge is returned when the body exceeds MaxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)

// Bind reads r and fills dst, which must be a pointer to a struct. params
// holds the path parameters resolved by the router.
func Bind(r *http.Request, params map[string]string, dst any) error {
	var body []byte
	if r.Body != nil && r.Body != http.NoBody {
		b, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		if len(b) > MaxBodyBytes {
			return ErrBodyTooLarge
		}
		body = b
	}
	return BindValues(params, r.URL.Query(), body, dst)
}

// BindJSON fills dst from a JSON document only. It is used for WebSocket
// payloads and offline validation.
func BindJSON(data []byte, dst any) error {
	return BindValues(nil, nil, data, dst)
}

// BindValues fills dst from already separated inputs.
func BindValues(params map[string]string, query url.Values, body []byte, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("binding: destination must be a non-nil struct pointer, got %T", dst)
	}
	target := rv.Elem()

	var issues []validation.Issue
	issues = append(issues, bindParams(target, params)...)
	issues = append(issues, bindQuery(target, query)...)

	bodyIssues, err := bindBody(target, body)
	if err != nil {
		return err
	}
	issues = append(issues, bodyIssues...)

	if len(issues) > 0 {
		return validation.NewError(issues...)
	}
	return nil
}

// ── Path and query ──────────────────────────────────────────

type textField struct {
	name      string
	value     reflect.Value
	optional  bool
	def       string
	hasDef    bool
	fieldType reflect.Type
}

// textFields lists the fields carrying tag, descending into embedded
// structs.
func textFields(v reflect.Value, tag string) []textField {
	var out []textField
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get(tag) == "" {
			out = append(out, textFields(v.Field(i), tag)...)
			continue
		}
		raw := f.Tag.Get(tag)
		if raw == "" || !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(raw, ",")
		def, hasDef := f.Tag.Lookup("default")
		out = append(out, textField{
			name:      name,
			value:     v.Field(i),
			optional:  strings.Contains(opts, "omitempty") || f.Type.Kind() == reflect.Pointer,
			def:       def,
			hasDef:    hasDef,
			fieldType: f.Type,
		})
	}
	return out
}

func bindParams(target reflect.Value, params map[string]string) []validation.Issue {
	var issues []validation.Issue
	for _, f := range textFields(target, "param") {
		raw := params[f.name]
		if raw == "" {
			issues = append(issues, requiredIssue(f.name))
			continue
		}
		if err := decodeText(f.value, raw); err != nil {
			issues = append(issues, textIssue(f, raw, err))
		}
	}
	return issues
}

func bindQuery(target reflect.Value, query url.Values) []validation.Issue {
	var issues []validation.Issue
	for _, f := range textFields(target, "query") {
		values := query[f.name]
		var input any
		switch {
		case len(values) == 1:
			input = values[0]
		case len(values) > 1:
			input = values
		case f.hasDef:
			input = f.def
		case f.optional:
			continue
		default:
			issues = append(issues, requiredIssue(f.name))
			continue
		}
		if err := decodeText(f.value, input); err != nil {
			issues = append(issues, textIssue(f, fmt.Sprint(input), err))
		}
	}
	return issues
}

var textUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// joinRepeatedHook turns a repeated query parameter into one comma-separated
// value when the target parses text, so ?ids=1&ids=2 reads like ?ids=1,2.
func joinRepeatedHook(from, to reflect.Type, data any) (any, error) {
	values, ok := data.([]string)
	if !ok {
		return data, nil
	}
	for to.Kind() == reflect.Pointer {
		to = to.Elem()
	}
	if reflect.PointerTo(to).Implements(textUnmarshaler) {
		return strings.Join(values, ","), nil
	}
	return data, nil
}

// decimalIntHook parses integer targets in base 10. The weak conversion
// would otherwise honor Go prefixes and read "010" as 8.
func decimalIntHook(from, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || reflect.PointerTo(to).Implements(textUnmarshaler) {
		return data, nil
	}
	s = strings.TrimSpace(s)
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s == "" {
			return int64(0), nil
		}
		return strconv.ParseInt(s, 10, to.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if s == "" {
			return uint64(0), nil
		}
		return strconv.ParseUint(s, 10, to.Bits())
	}
	return data, nil
}

func decodeText(field reflect.Value, input any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           field.Addr().Interface(),
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			joinRepeatedHook,
			decimalIntHook,
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func textIssue(f textField, raw string, err error) validation.Issue {
	t := f.fieldType
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	msg := fmt.Sprintf("Expected %s, received %q", jsonKind(t), raw)
	if reflect.PointerTo(t).Implements(textUnmarshaler) {
		msg = unwrapAll(err).Error()
	}
	return validation.Issue{Path: f.name, Code: validation.CodeInvalidType, Message: msg}
}

func unwrapAll(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// ── Body ────────────────────────────────────────────────────

func bindBody(target reflect.Value, body []byte) ([]validation.Issue, error) {
	if len(bodyFields(target.Type())) == 0 {
		return nil, nil
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedBody)
	}

	w := &walker{}
	tree = w.walk("", target.Type(), tree)
	if len(w.issues) > 0 {
		return w.issues, nil
	}

	normalized, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("re-encode body: %w", err)
	}
	if err := json.Unmarshal(normalized, target.Addr().Interface()); err != nil {
		return []validation.Issue{decodeIssue(err)}, nil
	}
	return nil, nil
}

func decodeIssue(err error) validation.Issue {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return validation.Issue{
			Path:    te.Field,
			Code:    validation.CodeInvalidType,
			Message: fmt.Sprintf("Expected %s, received %s", jsonKind(te.Type), te.Value),
		}
	}
	return validation.Issue{Code: validation.CodeInvalidBody, Message: err.Error()}
}

func requiredIssue(path string) validation.Issue {
	return validation.Issue{Path: path, Code: validation.CodeRequired, Message: "Required"}
}
