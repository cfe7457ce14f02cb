package descriptor

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their input key ("services[0].check.path")
// rather than by Go field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation failed: %w", err)
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}

	if len(messages) == 1 {
		return fmt.Errorf("validation error: %s", messages[0])
	}

	var sb strings.Builder
	sb.WriteString("validation errors:")
	for _, msg := range messages {
		sb.WriteString("\n  - ")
		sb.WriteString(msg)
	}
	return errors.New(sb.String())
}

// formatFieldError formats a single validation error into a user-friendly message.
func formatFieldError(e validator.FieldError) string {
	field := keyPath(e.Namespace())

	switch e.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("field '%s' is required but missing", field)
	case "min":
		return fmt.Sprintf("field '%s' must not be empty", field)
	default:
		return fmt.Sprintf("field '%s' failed validation (%s)", field, e.Tag())
	}
}

// keyPath drops the root struct name from a validator namespace.
func keyPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
