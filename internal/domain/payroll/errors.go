package payroll

import "errors"

var (
	ErrPayrollNotFound  = errors.New("payroll record not found")
	ErrPeriodLocked     = errors.New("payroll for this month is locked and cannot be regenerated")
	ErrNoActiveSalaries = errors.New("no teachers with an active salary found")
	ErrAlreadyPaid      = errors.New("payroll record already paid, cannot modify")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
)
