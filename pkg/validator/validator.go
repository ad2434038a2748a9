package validator

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Permissive phone pattern: optional leading +, then digits, dashes,
// spaces and parentheses.
var phoneRegexp = regexp.MustCompile(`^\+?[0-9\-\s\(\)]+$`)

// RegisterCustomValidations attaches domain validation rules to gin's
// binding validator. Call once during router setup.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRegexp.MatchString(fl.Field().String())
		})
	}
}

// ParseError flattens a binding error into a field -> message map suitable
// for the error response envelope.
func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	} else if err != nil { // Non-validator errors
		errors["error"] = err.Error()
	}
	return errors
}
