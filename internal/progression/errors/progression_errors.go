package progressionerrors

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
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeInvalidState,
		"eligibility record is not pending and cannot be processed again",
		http.StatusBadRequest,
	)
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
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"employee is not active",
		http.StatusBadRequest,
	)
	ErrStepNotHigher = apperror.New(
		apperror.CodeInvalidInput,
		"target step must be greater than the current step",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"rejection reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRaiseOptions = apperror.New(
		apperror.CodeInvalidInput,
		"increment_steps is required for INCREMENT_STEPS and target_step for TARGET_STEP, both positive",
		http.StatusBadRequest,
	)
	ErrSamePromotionRank = apperror.New(
		apperror.CodeInvalidInput,
		"new rank must differ from the current rank",
		http.StatusBadRequest,
	)
	ErrConcurrentModification = apperror.New(
		apperror.CodeConflict,
		"employee was modified by another operation, retry with fresh state",
		http.StatusConflict,
	)
)
