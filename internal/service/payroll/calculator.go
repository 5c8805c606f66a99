package payroll

import (
	"time"

	"github.com/edusuite/school-backend-go/internal/domain/attendance"
	"github.com/edusuite/school-backend-go/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// calcInput carries everything the per-teacher computation needs, read
// up front so the arithmetic itself stays free of I/O.
type calcInput struct {
	MonthlySalary      decimal.Decimal
	CarryForward       decimal.Decimal
	TotalDays          int
	DeductibleAbsences int
	Deposit            *ledger.TeacherSecurityDeposit
	Advances           []ledger.TeacherAdvance
	Loans              []ledger.TeacherLoan
	FloorNetSalary     bool
}

type loanDeduction struct {
	LoanID string
	Amount decimal.Decimal
}

type calcResult struct {
	GrossSalary         decimal.Decimal
	PerDaySalary        decimal.Decimal
	AttendanceDeduction decimal.Decimal
	DepositDeduction    decimal.Decimal
	AdvanceDeduction    decimal.Decimal
	LoanDeduction       decimal.Decimal
	LoanDeductions      []loanDeduction
	FinalSalary         decimal.Decimal
	NetSalary           decimal.Decimal
}

// totalDaysInMonth returns the per-day divisor for the period.
// working_days excludes Sundays only; there is no holiday calendar.
func totalDaysInMonth(month, year int, calcType attendance.SalaryCalculationType) int {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if calcType != attendance.CalcWorkingDays {
		return daysInMonth
	}

	days := 0
	for d := 1; d <= daysInMonth; d++ {
		if time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday() != time.Sunday {
			days++
		}
	}
	return days
}

// monthRange returns the first and last calendar day of the month.
// Attendance is always read over the full calendar month, regardless of
// the salary calculation type.
func monthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// previousPeriod rolls the year boundary at January.
func previousPeriod(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// computePayroll combines base salary, unpaid carry-forward, the
// attendance deduction and the three ledger deductions into one result.
// All monetary outputs are rounded to 2 decimal places.
//
// Carry-forward is added to gross but excluded from the per-day divisor:
// only the base salary is pro-rated over the month.
func computePayroll(in calcInput) calcResult {
	var res calcResult

	res.GrossSalary = in.MonthlySalary.Add(in.CarryForward).Round(2)
	res.PerDaySalary = in.MonthlySalary.DivRound(decimal.NewFromInt(int64(in.TotalDays)), 2)
	res.AttendanceDeduction = res.PerDaySalary.Mul(decimal.NewFromInt(int64(in.DeductibleAbsences))).Round(2)

	if in.Deposit != nil && in.Deposit.Status == ledger.DepositActive && in.Deposit.RemainingBalance.IsPositive() {
		res.DepositDeduction = decimal.Min(in.Deposit.InstallmentAmount, in.Deposit.RemainingBalance).Round(2)
	} else {
		res.DepositDeduction = decimal.Zero
	}

	// Advances are paid off in full in their scheduled month, never amortized.
	res.AdvanceDeduction = decimal.Zero
	for _, adv := range in.Advances {
		res.AdvanceDeduction = res.AdvanceDeduction.Add(adv.RemainingBalance)
	}
	res.AdvanceDeduction = res.AdvanceDeduction.Round(2)

	res.LoanDeduction = decimal.Zero
	for _, loan := range in.Loans {
		if !loan.RemainingBalance.IsPositive() {
			continue
		}
		amount := decimal.Min(loan.InstallmentAmount, loan.RemainingBalance).Round(2)
		res.LoanDeductions = append(res.LoanDeductions, loanDeduction{LoanID: loan.ID, Amount: amount})
		res.LoanDeduction = res.LoanDeduction.Add(amount)
	}

	res.FinalSalary = res.GrossSalary.Sub(res.AttendanceDeduction).Round(2)
	res.NetSalary = res.GrossSalary.
		Sub(res.AttendanceDeduction).
		Sub(res.DepositDeduction).
		Sub(res.AdvanceDeduction).
		Sub(res.LoanDeduction).
		Round(2)

	if in.FloorNetSalary && res.NetSalary.IsNegative() {
		res.NetSalary = decimal.Zero
	}

	return res
}
