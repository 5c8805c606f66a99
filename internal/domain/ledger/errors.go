package ledger

import "errors"

var (
	ErrDepositNotFound        = errors.New("security deposit not found")
	ErrActiveDepositExists    = errors.New("teacher already has an active security deposit")
	ErrAdvanceNotFound        = errors.New("advance not found")
	ErrAdvanceNotPending      = errors.New("advance is not pending, cannot approve")
	ErrLoanNotFound           = errors.New("loan not found")
	ErrDepositBalanceMismatch = errors.New("deposit collected and remaining amounts do not add up to total")
)
