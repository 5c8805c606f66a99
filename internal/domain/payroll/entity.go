package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending PayrollStatus = "pending"
	PayrollStatusPaid    PayrollStatus = "paid"
)

// TeacherPayroll - generated payroll result, one row per
// (teacher, month, year). NetSalary is the authoritative payable amount;
// FinalSalary is the legacy gross-minus-attendance figure and is always
// derived from the other columns, never entered independently.
type TeacherPayroll struct {
	ID                       string
	SchoolID                 string
	TeacherID                string
	Month                    int
	Year                     int
	RunID                    string
	MonthlySalary            decimal.Decimal
	GrossSalary              decimal.Decimal
	TotalDaysInMonth         int
	DeductibleAbsences       int
	PerDaySalary             decimal.Decimal
	TotalDeduction           decimal.Decimal
	SecurityDepositDeduction decimal.Decimal
	AdvanceDeduction         decimal.Decimal
	LoanDeduction            decimal.Decimal
	FinalSalary              decimal.Decimal
	NetSalary                decimal.Decimal
	Status                   PayrollStatus
	PaidDate                 *time.Time
	IsLocked                 bool
	CreatedAt                time.Time
	UpdatedAt                time.Time

	// Joined fields
	TeacherName *string
}
