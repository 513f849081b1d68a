package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Message turns a validation failure into the sentence shown above a form.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Please check the form and try again."
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return "Please fill in all fields"
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s is too long.", fe.Field())
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}
