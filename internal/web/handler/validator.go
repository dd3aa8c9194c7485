package handler

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors is a local validation failure: field-scoped messages that
// block submission before any network call is made.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, m := range e.Fields {
		msgs = append(msgs, m)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate.
// Field names come from the `form` tag, which is also what the templates
// key error messages on.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = fieldError(fe)
			}
		}
		return &FieldErrors{Fields: fields}
	}
	return err
}

// fieldError converts a single ValidationError into the message the form
// shows under the field.
func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return displayName(fe.Field()) + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", displayName(fe.Field()), fe.Param())
	case "eqfield":
		return "Passwords must match"
	default:
		return fmt.Sprintf("%s failed validation (%s)", displayName(fe.Field()), fe.Tag())
	}
}

func displayName(field string) string {
	switch field {
	case "email":
		return "Email"
	case "password":
		return "Password"
	case "confirm_password":
		return "Confirm password"
	case "title":
		return "Title"
	case "content":
		return "Content"
	default:
		return field
	}
}

// fieldErrors unpacks a validation error into its per-field map, or nil
// for any other error.
func fieldErrors(err error) map[string]string {
	var fe *FieldErrors
	if errors.As(err, &fe) {
		return fe.Fields
	}
	return nil
}
