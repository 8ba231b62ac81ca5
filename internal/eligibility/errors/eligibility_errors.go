package eligibilityerrors

import (
	"net/http"

	"go-paygrade/internal/shared/apperror"
)

var (
	ErrEligibilityNotFound = apperror.New(
		apperror.CodeNotFound,
		"eligibility record not found",
		http.StatusNotFound,
	)
	ErrDuplicateOpenEligibility = apperror.New(
		apperror.CodeConflict,
		"an open eligibility record already exists for this employee and step",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status filter must be one of PENDING, APPROVED, REJECTED, EXPIRED",
		http.StatusBadRequest,
	)
)
