package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositStatus enum
type DepositStatus string

const (
	DepositActive    DepositStatus = "active"
	DepositCompleted DepositStatus = "completed"
)

// TeacherSecurityDeposit - at most one active per teacher.
// Invariant: CollectedAmount + RemainingBalance == TotalDeposit at all times.
type TeacherSecurityDeposit struct {
	ID                string
	SchoolID          string
	TeacherID         string
	TotalDeposit      decimal.Decimal
	CollectedAmount   decimal.Decimal
	RemainingBalance  decimal.Decimal
	InstallmentAmount decimal.Decimal
	Status            DepositStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AdvanceStatus enum
type AdvanceStatus string

const (
	AdvancePending        AdvanceStatus = "pending"
	AdvanceApproved       AdvanceStatus = "approved"
	AdvanceDeducted       AdvanceStatus = "deducted"
	AdvanceCarriedForward AdvanceStatus = "carried_forward"
)

// TeacherAdvance - one per cash advance, fully deducted in the single
// scheduled deduction month, never amortized.
type TeacherAdvance struct {
	ID               string
	SchoolID         string
	TeacherID        string
	Amount           decimal.Decimal
	DeductionMonth   int
	DeductionYear    int
	DeductedAmount   decimal.Decimal
	RemainingBalance decimal.Decimal
	Status           AdvanceStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LoanStatus enum
type LoanStatus string

const (
	LoanActive    LoanStatus = "active"
	LoanCompleted LoanStatus = "completed"
)

// TeacherLoan - repaid in monthly installments of min(installment, remaining).
type TeacherLoan struct {
	ID                string
	SchoolID          string
	TeacherID         string
	TotalLoanAmount   decimal.Decimal
	RemainingBalance  decimal.Decimal
	InstallmentAmount decimal.Decimal
	StartMonth        int
	StartYear         int
	Status            LoanStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
