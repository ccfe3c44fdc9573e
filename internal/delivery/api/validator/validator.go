// Package validator adapts go-playground/validator to echo and renders field errors by their JSON names.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"notesia/internal/errors"

	"github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "The field '%s' is required.",
	"email":    "The field '%s' must be a valid email address.",
	"min":      "The field '%s' must be at least %s characters long.",
	"max":      "The field '%s' must be no longer than %s characters.",
	"gte":      "The field '%s' must be greater than or equal to %s.",
	"lte":      "The field '%s' must be less than or equal to %s.",
	"oneof":    "The field '%s' must be one of [%s].",
	"uuid":     "The field '%s' must be a valid UUID.",
	"dive":     "The field '%s' contains an invalid item.",
}

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json tag.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	return &EchoValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// Details maps each failing field to a readable message. It returns nil for non-validation errors.
func Details(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		details[fieldPath(fe)] = message(fe)
	}

	return details
}

// fieldPath drops the root struct name from the namespace, e.g. CreateNoteRequest.tags[0] -> tags[0].
func fieldPath(fe validator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		return path
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "min" || fe.Tag() == "max" {
		return sizeMessage(fe)
	}

	msg, ok := messages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("The field '%s' is invalid: %s.", fe.Field(), fe.Tag())
	}

	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, fe.Field(), fe.Param())
	}

	return fmt.Sprintf(msg, fe.Field())
}

// sizeMessage words min and max by what they bound on the field's kind.
func sizeMessage(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf(messages[fe.Tag()], fe.Field(), fe.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}

		return fmt.Sprintf("The field '%s' must contain %s %s items.", fe.Field(), bound, fe.Param())
	default:
		bound := "greater than or equal to"
		if fe.Tag() == "max" {
			bound = "less than or equal to"
		}

		return fmt.Sprintf("The field '%s' must be %s %s.", fe.Field(), bound, fe.Param())
	}
}
