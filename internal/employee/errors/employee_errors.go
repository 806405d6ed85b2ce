package errors

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
)

var ErrNegativePay = apperror.New(
	apperror.CodeInvalidInput,
	"pay can't be a negative number",
	http.StatusBadRequest,
)
