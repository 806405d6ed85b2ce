package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MapValidationError converts the first gin binding failure into an
// AppError with the offending field name in the message.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		field := strings.ReplaceAll(e.Field(), "_", " ")

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
