package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator. Field errors are reported under their JSON names.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates s and returns per-field messages, or nil when s is valid.
func Struct(s any) map[string]string {
	return ToDetails(Validator().Struct(s))
}

// ToDetails converts validation errors into a map[field]message suitable for error details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch {
	case fe.Tag() == "required":
		return "is required"
	case fe.Tag() == "min" && param == "1":
		return "must not be empty"
	case param != "":
		return fmt.Sprintf("validation failed for '%s' with parameter '%s'", fe.Tag(), param)
	default:
		return fmt.Sprintf("validation failed for '%s'", fe.Tag())
	}
}
