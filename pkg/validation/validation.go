// Package validation checks and coerces untrusted request input. Every
// violated field is reported, not just the first one.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prosperitycompass/backend/pkg/domain"
)

// Error is a structured, field-level validation failure.
type Error struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// Coercer is implemented by inputs that convert raw fields (dates, amounts)
// after tag validation.
type Coercer interface {
	Coerce(e *Error)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// maxbytes bounds the encoded length of a string; max counts runes.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	})
	return v
}

// New returns an empty Error ready to collect problems.
func New() *Error {
	return &Error{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
}

// Check validates v's struct tags and, when v is a Coercer, its raw fields.
// The result is never nil; use Err to get a nil error on success.
func Check(v any) *Error {
	e := New().Struct(v)
	if c, ok := v.(Coercer); ok {
		c.Coerce(e)
	}
	return e
}

// Add records msg against field.
func (e *Error) Add(field, msg string) {
	e.FieldErrors[field] = append(e.FieldErrors[field], msg)
}

// AddForm records a problem that is not tied to a single field.
func (e *Error) AddForm(msg string) {
	e.FormErrors = append(e.FormErrors, msg)
}

// Has reports whether field already failed.
func (e *Error) Has(field string) bool {
	return len(e.FieldErrors[field]) > 0
}

// Empty reports whether nothing was recorded.
func (e *Error) Empty() bool {
	return len(e.FormErrors) == 0 && len(e.FieldErrors) == 0
}

// Err returns e as an error, or nil when nothing was recorded.
func (e *Error) Err() error {
	if e == nil || e.Empty() {
		return nil
	}
	return e
}

func (e *Error) Error() string {
	parts := append([]string{}, e.FormErrors...)
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.FieldErrors[f], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, domain.ErrValidation) hold for every *Error.
func (e *Error) Is(target error) bool {
	return target == domain.ErrValidation
}

// Struct runs the tag validator over v. Fields that already carry an error
// (for example a JSON type mismatch) are not reported twice.
func (e *Error) Struct(v any) *Error {
	err := validate.Struct(v)
	if err == nil {
		return e
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		e.AddForm(err.Error())
		return e
	}
	seen := map[string]bool{}
	for f := range e.FieldErrors {
		seen[f] = true
	}
	for _, fe := range ves {
		if seen[fe.Field()] {
			continue
		}
		e.Add(fe.Field(), message(fe))
	}
	return e
}

// Decode records a JSON decoding failure. A type mismatch is reported on the
// offending field; anything else is a form-level error.
func (e *Error) Decode(err error) *Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		e.Add(typeErr.Field, fmt.Sprintf("Expected %s, received %s", kindName(typeErr.Type), typeErr.Value))
		return e
	}
	e.AddForm("Invalid JSON body")
	return e
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "uuid", "uuid4":
		return "Invalid uuid"
	case "numeric":
		return "Must contain only digits"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
		}
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
		}
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("String must contain at most %s byte(s)", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
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
	default:
		return "object"
	}
}
