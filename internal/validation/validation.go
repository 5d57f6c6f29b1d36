// Package validation checks bound contract structs against their `validate`
// tags and reports failures as field-level issues.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/little-samo/samo-api/pkg/contracts"
	"github.com/little-samo/samo-api/pkg/models"
)

// Issue codes. Tag failures that have no closer match report CodeCustom.
const (
	CodeRequired         = "required"
	CodeInvalidType      = "invalid_type"
	CodeTooSmall         = "too_small"
	CodeTooBig           = "too_big"
	CodeInvalidEnum      = "invalid_enum_value"
	CodeInvalidString    = "invalid_string"
	CodeUnrecognizedKeys = "unrecognized_keys"
	CodeInvalidUnion     = "invalid_union_discriminator"
	CodeInvalidBody      = "invalid_body"
	CodeCustom           = "custom"
)

// Issue is one problem found in a request. Path is the dotted JSON path of
// the member ("config.rules.3"); it is empty for problems with the whole
// payload.
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError carries every issue found in one request.
type ValidationError struct {
	Issues []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		if is.Path == "" {
			parts[i] = is.Message
			continue
		}
		parts[i] = is.Path + ": " + is.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError returns a ValidationError holding issues.
func NewError(issues ...Issue) *ValidationError {
	return &ValidationError{Issues: issues}
}

// AsError unwraps a *ValidationError from err.
func AsError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var (
	usernameRe     = regexp.MustCompile(`^[a-z0-9_]+$`)
	canvasNameRe   = regexp.MustCompile(`^[a-zA-Z_]+$`)
	hhmmRe         = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	referralCodeRe = regexp.MustCompile(`^[A-Z0-9]+$`)
	httpURLRe      = regexp.MustCompile(`^https?://.+`)
)

// Limits shared by the image and avatar rules.
const (
	maxURLLen      = 2048
	maxImageKeyLen = 32
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	mustRegister(v, "username", matches(usernameRe))
	mustRegister(v, "canvasname", matches(canvasNameRe))
	mustRegister(v, "hhmm", matches(hhmmRe))
	mustRegister(v, "referralcode", matches(referralCodeRe))
	mustRegister(v, "httpurl", matches(httpURLRe))
	mustRegister(v, "utf16min", textLen(func(n, limit int) bool { return n >= limit }))
	mustRegister(v, "utf16max", textLen(func(n, limit int) bool { return n <= limit }))
	mustRegister(v, "imageref", func(fl validator.FieldLevel) bool {
		return isImageRef(fl.Field().String())
	})
	mustRegister(v, "avatar", func(fl validator.FieldLevel) bool {
		return models.IsPredefinedAvatar(fl.Field().String())
	})
	mustRegister(v, "avatarorcustom", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return models.IsPredefinedAvatar(s) || models.TextLen(s) <= maxURLLen
	})
	mustRegister(v, "character", func(fl validator.FieldLevel) bool {
		c, ok := fl.Field().Interface().(models.Character)
		return !ok || len(c.Oversized(models.CharacterPropertyMaxLen)) == 0
	})

	for _, t := range nullableTypes() {
		v.RegisterCustomTypeFunc(nullableValue, reflect.New(t).Elem().Interface())
	}
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// textLen compares a string's UTF-16 length with the tag parameter.
func textLen(ok func(n, limit int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("validation: bad %s parameter %q", fl.GetTag(), fl.Param()))
		}
		return ok(models.TextLen(fl.Field().String()), limit)
	}
}

// isImageRef accepts an http(s) URL of at most 2048 characters or an
// uploaded image key of at most 32.
func isImageRef(s string) bool {
	n := models.TextLen(s)
	if httpURLRe.MatchString(s) && n <= maxURLLen {
		return true
	}
	return n <= maxImageKeyLen
}

// fieldName names struct fields after the member that carries them on the
// wire. Fields without one fall back to the Go name and are dropped from
// issue paths.
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "param", "query"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

// ── Nullable ────────────────────────────────────────────────

type nullable interface {
	ElemType() reflect.Type
	Interface() any
}

var nullableIface = reflect.TypeOf((*nullable)(nil)).Elem()

// nullableValue hands the validator a *T that is nil for absent and null
// members, so `omitnil` skips them.
func nullableValue(v reflect.Value) any {
	if n, ok := v.Interface().(nullable); ok {
		return n.Interface()
	}
	return nil
}

// nullableTypes collects every models.Nullable instantiation reachable from
// the request types of the contract catalog, the WebSocket registry and the
// MCP tools.
func nullableTypes() []reflect.Type {
	seen := map[reflect.Type]bool{}
	var found []reflect.Type
	var walk func(t reflect.Type)
	walk = func(t reflect.Type) {
		for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Map {
			t = t.Elem()
		}
		if seen[t] {
			return
		}
		seen[t] = true
		if t.Implements(nullableIface) {
			found = append(found, t)
			walk(reflect.New(t).Elem().Interface().(nullable).ElemType())
			return
		}
		if t.Kind() != reflect.Struct {
			return
		}
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				walk(f.Type)
			}
		}
	}
	for _, e := range contracts.Catalog() {
		walk(reflect.TypeOf(e.NewRequest()))
	}
	for _, m := range contracts.WSMessages() {
		walk(reflect.TypeOf(m.NewRequest()))
	}
	for _, tool := range contracts.MCPTools() {
		walk(reflect.TypeOf(tool.NewInput()))
	}
	return found
}

// ── Struct ──────────────────────────────────────────────────

// Struct validates s and returns nil or a *ValidationError.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, issueFor(fe))
	}
	return NewError(issues...)
}

// Path turns a validator namespace into a JSON path. Segments that start
// with an upper-case letter are Go type or field names and are dropped.
func Path(namespace string) string {
	namespace = strings.NewReplacer("[", ".", "]", "").Replace(namespace)
	var out []string
	for _, seg := range strings.Split(namespace, ".") {
		if seg == "" {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(seg); unicode.IsUpper(r) {
			continue
		}
		out = append(out, seg)
	}
	return strings.Join(out, ".")
}

func issueFor(fe validator.FieldError) Issue {
	is := Issue{Path: Path(fe.Namespace())}
	param := fe.Param()
	noun := sizeNoun(fe.Kind())

	switch fe.Tag() {
	case "required":
		is.Code, is.Message = CodeRequired, "Required"
	case "min", "gte", "utf16min":
		is.Code = CodeTooSmall
		is.Message = sizeMessage(noun, "at least", "greater than or equal to", param)
	case "gt":
		is.Code = CodeTooSmall
		is.Message = sizeMessage(noun, "more than", "greater than", param)
	case "max", "lte", "utf16max":
		is.Code = CodeTooBig
		is.Message = sizeMessage(noun, "at most", "less than or equal to", param)
	case "lt":
		is.Code = CodeTooBig
		is.Message = sizeMessage(noun, "fewer than", "less than", param)
	case "len":
		is.Code = CodeInvalidString
		is.Message = sizeMessage(noun, "exactly", "equal to", param)
	case "oneof":
		is.Code = CodeInvalidEnum
		opts := strings.Fields(param)
		for i, o := range opts {
			opts[i] = "'" + o + "'"
		}
		is.Message = fmt.Sprintf("Invalid enum value. Expected %s, received '%v'", strings.Join(opts, " | "), fe.Value())
	case "url", "httpurl":
		is.Code, is.Message = CodeInvalidString, "Invalid url"
	case "username", "canvasname", "hhmm", "referralcode":
		is.Code, is.Message = CodeInvalidString, "Invalid "+fe.Tag()
	case "imageref":
		is.Code, is.Message = CodeInvalidString, "Expected an http(s) URL of at most 2048 characters or an image key of at most 32"
	case "avatar":
		is.Code, is.Message = CodeInvalidEnum, "Expected one of the predefined avatars"
	case "avatarorcustom":
		is.Code, is.Message = CodeInvalidString, "Expected a predefined avatar or a custom avatar of at most 2048 characters"
	case "character":
		is.Code = CodeTooBig
		is.Message = fmt.Sprintf("Character properties must contain at most %d character(s)", models.CharacterPropertyMaxLen)
	default:
		is.Code = CodeCustom
		is.Message = fmt.Sprintf("Failed %q rule", fe.Tag())
	}
	return is
}

func sizeNoun(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "String"
	case reflect.Slice, reflect.Array, reflect.Map:
		return "Array"
	}
	return "Number"
}

func sizeMessage(noun, countWord, cmpWord, param string) string {
	switch noun {
	case "String":
		return fmt.Sprintf("String must contain %s %s character(s)", countWord, param)
	case "Array":
		return fmt.Sprintf("Array must contain %s %s element(s)", countWord, param)
	}
	return fmt.Sprintf("Number must be %s %s", cmpWord, param)
}
