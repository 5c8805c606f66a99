package ledger

import (
	"github.com/edusuite/school-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== DEPOSIT DTOs ==========

type CreateDepositRequest struct {
	TeacherID         string          `json:"teacher_id"`
	TotalDeposit      decimal.Decimal `json:"total_deposit"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
}

func (r *CreateDepositRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if !r.TotalDeposit.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "total_deposit", Message: "must be positive"})
	}
	if !r.InstallmentAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "installment_amount", Message: "must be positive"})
	}
	if r.InstallmentAmount.GreaterThan(r.TotalDeposit) {
		errs = append(errs, validator.ValidationError{Field: "installment_amount", Message: "must not exceed total_deposit"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepositResponse struct {
	ID                string          `json:"id"`
	SchoolID          string          `json:"school_id"`
	TeacherID         string          `json:"teacher_id"`
	TotalDeposit      decimal.Decimal `json:"total_deposit"`
	CollectedAmount   decimal.Decimal `json:"collected_amount"`
	RemainingBalance  decimal.Decimal `json:"remaining_balance"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	Status            string          `json:"status"`
}

// ========== ADVANCE DTOs ==========

type CreateAdvanceRequest struct {
	TeacherID      string          `json:"teacher_id"`
	Amount         decimal.Decimal `json:"amount"`
	DeductionMonth int             `json:"deduction_month"`
	DeductionYear  int             `json:"deduction_year"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !validator.IsValidMonth(r.DeductionMonth) {
		errs = append(errs, validator.ValidationError{Field: "deduction_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.DeductionYear) {
		errs = append(errs, validator.ValidationError{Field: "deduction_year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID               string          `json:"id"`
	SchoolID         string          `json:"school_id"`
	TeacherID        string          `json:"teacher_id"`
	Amount           decimal.Decimal `json:"amount"`
	DeductionMonth   int             `json:"deduction_month"`
	DeductionYear    int             `json:"deduction_year"`
	DeductedAmount   decimal.Decimal `json:"deducted_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Status           string          `json:"status"`
}

// ========== LOAN DTOs ==========

type CreateLoanRequest struct {
	TeacherID         string          `json:"teacher_id"`
	TotalLoanAmount   decimal.Decimal `json:"total_loan_amount"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	StartMonth        int             `json:"start_month"`
	StartYear         int             `json:"start_year"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if !r.TotalLoanAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "total_loan_amount", Message: "must be positive"})
	}
	if !r.InstallmentAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "installment_amount", Message: "must be positive"})
	}
	if !validator.IsValidMonth(r.StartMonth) {
		errs = append(errs, validator.ValidationError{Field: "start_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.StartYear) {
		errs = append(errs, validator.ValidationError{Field: "start_year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID                string          `json:"id"`
	SchoolID          string          `json:"school_id"`
	TeacherID         string          `json:"teacher_id"`
	TotalLoanAmount   decimal.Decimal `json:"total_loan_amount"`
	RemainingBalance  decimal.Decimal `json:"remaining_balance"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	StartMonth        int             `json:"start_month"`
	StartYear         int             `json:"start_year"`
	Status            string          `json:"status"`
}
