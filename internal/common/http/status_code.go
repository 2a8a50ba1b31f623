package http

import (
	"errors"
	"net/http"

	"github.com/publibudget/go-commitment-engine/internal/common"
)

// StatusCodeFromError maps service sentinel errors to HTTP status codes.
// Anything unrecognized is a 500.
func StatusCodeFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrBudgetLineNotFound),
		errors.Is(err, common.ErrDocumentNotFound),
		errors.Is(err, common.ErrRuleNotFound),
		errors.Is(err, common.ErrDataNotFound):
		return http.StatusNotFound

	case errors.Is(err, common.ErrInvalidTransition),
		errors.Is(err, common.ErrDocumentImmutable),
		errors.Is(err, common.ErrRuleImmutable),
		errors.Is(err, common.ErrConcurrentModification),
		errors.Is(err, common.ErrDataExist):
		return http.StatusConflict

	case errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrInsufficientBalance),
		errors.Is(err, common.ErrInsufficientReservation),
		errors.Is(err, common.ErrExceedsEngagedAmount),
		errors.Is(err, common.ErrExceedsRemainingPayable),
		errors.Is(err, common.ErrNoApplicableRule),
		errors.Is(err, common.ErrInvalidOperator),
		errors.Is(err, common.ErrInvalidOperationType),
		errors.Is(err, common.ErrMissingBeneficiary),
		errors.Is(err, common.ErrAmbiguousBeneficiary),
		errors.Is(err, common.ErrMissingImputation),
		errors.Is(err, common.ErrAmbiguousImputation),
		errors.Is(err, common.ErrValidation):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}
