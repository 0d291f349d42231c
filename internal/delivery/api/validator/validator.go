// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// messageTag holds the user facing message reported when a field fails validation.
const messageTag = "msg"

// Validator validates bound request payloads.
type Validator struct {
	validate *playground.Validate
}

// New returns a Validator with struct tag validation enabled.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks i and reports the message of the first failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return errors.Wrap(domainerrors.Validation(fieldMessage(i, fieldErrs[0])), fieldErrs[0].Error())
}

func fieldMessage(i any, fieldErr playground.FieldError) string {
	t := reflect.TypeOf(i)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}

	field, ok := t.FieldByName(fieldErr.StructField())
	if !ok {
		return ""
	}

	return field.Tag.Get(messageTag)
}
