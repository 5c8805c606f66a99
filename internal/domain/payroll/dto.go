package payroll

import (
	"github.com/edusuite/school-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID                       string          `json:"id"`
	SchoolID                 string          `json:"school_id"`
	TeacherID                string          `json:"teacher_id"`
	TeacherName              string          `json:"teacher_name,omitempty"`
	Month                    int             `json:"month"`
	Year                     int             `json:"year"`
	RunID                    string          `json:"run_id"`
	MonthlySalary            decimal.Decimal `json:"monthly_salary"`
	GrossSalary              decimal.Decimal `json:"gross_salary"`
	TotalDaysInMonth         int             `json:"total_days_in_month"`
	DeductibleAbsences       int             `json:"deductible_absences"`
	PerDaySalary             decimal.Decimal `json:"per_day_salary"`
	TotalDeduction           decimal.Decimal `json:"total_deduction"`
	SecurityDepositDeduction decimal.Decimal `json:"security_deposit_deduction"`
	AdvanceDeduction         decimal.Decimal `json:"advance_deduction"`
	LoanDeduction            decimal.Decimal `json:"loan_deduction"`
	FinalSalary              decimal.Decimal `json:"final_salary"`
	NetSalary                decimal.Decimal `json:"net_salary"`
	Status                   string          `json:"status"`
	PaidDate                 *string         `json:"paid_date,omitempty"`
	IsLocked                 bool            `json:"is_locked"`
}

type PayrollFilter struct {
	Month     *int
	Year      *int
	Status    *string
	TeacherID *string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// PayrollSummaryResponse backs the printable monthly report.
type PayrollSummaryResponse struct {
	Month                    int             `json:"month"`
	Year                     int             `json:"year"`
	TotalTeachers            int             `json:"total_teachers"`
	TotalMonthlySalary       decimal.Decimal `json:"total_monthly_salary"`
	TotalGrossSalary         decimal.Decimal `json:"total_gross_salary"`
	TotalAttendanceDeduction decimal.Decimal `json:"total_attendance_deduction"`
	TotalDepositDeduction    decimal.Decimal `json:"total_deposit_deduction"`
	TotalAdvanceDeduction    decimal.Decimal `json:"total_advance_deduction"`
	TotalLoanDeduction       decimal.Decimal `json:"total_loan_deduction"`
	TotalNetSalary           decimal.Decimal `json:"total_net_salary"`
	PendingCount             int             `json:"pending_count"`
	PaidCount                int             `json:"paid_count"`
}
