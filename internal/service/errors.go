package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationError reports a missing or invalid request field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports that no recipe has the requested id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recipe %s not found", e.ID)
}

// newValidator returns a validator that names fields by their json key
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// whitespace-only strings count as empty
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// toValidationError converts the first validator failure into a ValidationError
func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := fe.Field()
	if strings.Contains(field, "[") {
		return &ValidationError{Field: field, Message: "must be a non-empty string"}
	}
	if fe.Tag() == "notblank" {
		return &ValidationError{Field: field, Message: fmt.Sprintf("`%s` must not be blank", field)}
	}
	return &ValidationError{Field: field, Message: fmt.Sprintf("missing `%s` in request body", field)}
}
