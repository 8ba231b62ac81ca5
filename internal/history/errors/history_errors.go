package historyerrors

import (
	"net/http"

	"go-paygrade/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary history entry not found",
		http.StatusNotFound,
	)
	ErrInvalidChangeTypeFilter = apperror.New(
		apperror.CodeInvalidInput,
		"change_type filter must be one of STEP_INCREMENT, MANUAL_JUMP, MASS_RAISE, PROMOTION",
		http.StatusBadRequest,
	)
	ErrInvalidDateFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date filter, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
