package errors

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
)

var (
	ErrNegativeBasePay = apperror.New(
		apperror.CodeInvalidInput,
		"dept_basePay can't be a negative number",
		http.StatusBadRequest,
	)

	// SUM over zero employee rows yields NULL, so "department missing" and
	// "department with no employees" are indistinguishable by design.
	ErrNoEmployeePay = apperror.New(
		apperror.CodeNotFound,
		"Department not found or no employees in the department",
		http.StatusNotFound,
	)

	ErrNoHistoryRecords = apperror.New(
		apperror.CodeNotFound,
		"No history records found",
		http.StatusNotFound,
	)

	ErrNoDepartmentHistory = apperror.New(
		apperror.CodeNotFound,
		"No history records found for the specified department",
		http.StatusNotFound,
	)
)
