package reportingerrors

import (
	"net/http"

	"go-paygrade/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrRankNotFound = apperror.New(
		apperror.CodeNotFound,
		"rank not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotRanked = apperror.New(
		apperror.CodeInvalidState,
		"employee has no rank assigned",
		http.StatusBadRequest,
	)
)
