package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected          = errors.New("no rows affected")
	ErrValidation              = errors.New("validation failed")
	ErrDataNotFound            = errors.New("data not found")
	ErrDataExist               = errors.New("data exist")
	ErrInternalServerError     = errors.New("internal server error")
	ErrInvalidFormatDate       = errors.New("invalid format date")
	ErrIDEmpty                 = errors.New("ID is empty")
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrInsufficientBalance     = errors.New("insufficient available balance")
	ErrInsufficientReservation = errors.New("amount exceeds reservation remaining balance")
	ErrExceedsEngagedAmount    = errors.New("paid amount would exceed engaged amount")
	ErrExceedsRemainingPayable = errors.New("amount exceeds remaining payable")
	ErrInvalidTransition       = errors.New("transition not permitted from current status")
	ErrDocumentImmutable       = errors.New("document reached a terminal status and is immutable")
	ErrNoApplicableRule        = errors.New("no applicable accounting rule for operation")
	ErrConcurrentModification  = errors.New("concurrent modification detected")
	ErrCorruptBudgetLine       = errors.New("budget line loaded with negative available balance")
	ErrRuleImmutable           = errors.New("accounting rule is referenced by a posting and cannot be changed")
	ErrInvalidOperator         = errors.New("operator not allowed for field type")
	ErrInvalidOperationType    = errors.New("invalid operation type")
	ErrMissingBeneficiary      = errors.New("document requires exactly one beneficiary")
	ErrAmbiguousBeneficiary    = errors.New("supplier and free-text payee are mutually exclusive")
	ErrMissingImputation       = errors.New("expense requires exactly one budgetary imputation")
	ErrAmbiguousImputation     = errors.New("expense references more than one budgetary imputation")
	ErrBudgetLineNotFound      = errors.New("budget line not found")
	ErrDocumentNotFound        = errors.New("document not found")
	ErrRuleNotFound            = errors.New("accounting rule not found")
	ErrNoRows                  = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
