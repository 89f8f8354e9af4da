package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/CloudsoftGithub/items-admin/internal/pkg/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs tag validation on a request payload and reports the first
// failure only: submission is all-or-nothing, there is no partial submit.
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	first := verrs[0]
	field := jsonFieldName(req, first.StructField())
	if first.Tag() == "required" {
		return apperrors.NewCustomError(
			apperrors.ErrRequiredField,
			fmt.Sprintf("%s is required", field),
		).WithDetails(map[string]interface{}{"field": field})
	}
	return apperrors.NewValidationError(field, fmt.Sprintf("%s is invalid (%s)", field, first.Tag()))
}

// jsonFieldName maps a struct field back to its json tag for user-facing messages
func jsonFieldName(req interface{}, structField string) string {
	t := reflect.TypeOf(req)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return structField
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := strings.Split(f.Tag.Get("json"), ",")[0]
		if tag != "" && tag != "-" {
			return tag
		}
	}
	return structField
}
