package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerRepository defines data access methods for the three deduction
// ledgers: security deposits, advances and loans.
// All methods include schoolID parameter to prevent cross-school data access.
type LedgerRepository interface {
	// Deposits
	CreateDeposit(ctx context.Context, d TeacherSecurityDeposit) (TeacherSecurityDeposit, error)
	GetActiveDepositByTeacher(ctx context.Context, teacherID string, schoolID string) (*TeacherSecurityDeposit, error)
	ListDeposits(ctx context.Context, schoolID string) ([]TeacherSecurityDeposit, error)
	// ApplyDepositDeduction moves amount from remaining to collected and
	// completes the deposit when the remaining balance reaches zero.
	ApplyDepositDeduction(ctx context.Context, id string, schoolID string, amount decimal.Decimal) error

	// Advances
	CreateAdvance(ctx context.Context, a TeacherAdvance) (TeacherAdvance, error)
	GetAdvanceByID(ctx context.Context, id string, schoolID string) (TeacherAdvance, error)
	ApproveAdvance(ctx context.Context, id string, schoolID string) (TeacherAdvance, error)
	ListAdvances(ctx context.Context, schoolID string) ([]TeacherAdvance, error)
	// GetApprovedAdvances returns approved advances scheduled for the
	// given month and year, per teacher.
	GetApprovedAdvances(ctx context.Context, teacherID string, schoolID string, month, year int) ([]TeacherAdvance, error)
	// SettleAdvance zeroes the remaining balance, records the full amount
	// as deducted and transitions the advance to deducted.
	SettleAdvance(ctx context.Context, id string, schoolID string) error

	// Loans
	CreateLoan(ctx context.Context, l TeacherLoan) (TeacherLoan, error)
	ListLoans(ctx context.Context, schoolID string) ([]TeacherLoan, error)
	GetActiveLoansByTeacher(ctx context.Context, teacherID string, schoolID string) ([]TeacherLoan, error)
	// ApplyLoanDeduction decrements the remaining balance and completes
	// the loan when it reaches zero.
	ApplyLoanDeduction(ctx context.Context, id string, schoolID string, amount decimal.Decimal) error
}
