// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required fields
// or length bounds) defined in struct tags and extracts validation
// errors into a format the client can understand.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their wire names (json tag, query tag as fallback)
	// so clients see "full_name", not "FullName".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return v
}

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,gt=0"`)
// - Implement Validate() error that runs validation.Struct(req)
type Validatable interface {
	Validate() error
}

// FieldError describes a single validation issue for a specific field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is the caller-facing validation failure: a safe message plus
// field-level details. Handlers translate it into a 400 response.
type Error struct {
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// Struct applies the payload's validator tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindBody parses the JSON request body into payload and validates it.
func BindBody(c *fiber.Ctx, payload Validatable) error {
	if err := c.BodyParser(payload); err != nil {
		return &Error{Message: "malformed request body"}
	}
	return translate(payload.Validate())
}

// BindQuery parses the query string into payload and validates it.
// The payload should carry its defaults before binding; QueryParser only
// overwrites fields that appear in the query string.
func BindQuery(c *fiber.Ctx, payload Validatable) error {
	if err := c.QueryParser(payload); err != nil {
		return &Error{Message: "malformed query parameters"}
	}
	return translate(payload.Validate())
}

// Var validates a single value (e.g. one query parameter) against a tag
// expression, reporting failures under the given field name.
func Var(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Message: "validation failed", Fields: []FieldError{{Field: field, Error: "is invalid"}}}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: field, Error: message(fe)})
	}
	return &Error{Message: "validation failed", Fields: fields}
}

// translate converts validator.ValidationErrors into *Error; anything
// else passes through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Error: message(fe)})
	}
	return &Error{Message: "validation failed", Fields: fields}
}

// message converts a single tag failure into a user-friendly string.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		// min on strings is a length bound, on numbers a value bound
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())

	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())

	case "lte":
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "dive":
		return "some items are invalid"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}
