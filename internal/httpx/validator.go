package httpx

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs struct-tag validation on a request body and returns
// field-level details for the error envelope, or nil when the input is valid.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []ErrorDetail
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}
