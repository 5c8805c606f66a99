package payroll

import (
	"testing"

	"github.com/edusuite/school-backend-go/internal/domain/attendance"
	"github.com/edusuite/school-backend-go/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestTotalDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		month    int
		year     int
		calcType attendance.SalaryCalculationType
		expected int
	}{
		{"january calendar", 1, 2026, attendance.CalcCalendarDays, 31},
		{"february calendar", 2, 2026, attendance.CalcCalendarDays, 28},
		{"february leap calendar", 2, 2028, attendance.CalcCalendarDays, 29},
		{"april calendar", 4, 2026, attendance.CalcCalendarDays, 30},
		// January 2026 has Sundays on the 4th, 11th, 18th and 25th.
		{"january working days", 1, 2026, attendance.CalcWorkingDays, 27},
		// February 2026 has four Sundays.
		{"february working days", 2, 2026, attendance.CalcWorkingDays, 24},
		// May 2026 has five Sundays.
		{"may working days", 5, 2026, attendance.CalcWorkingDays, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, totalDaysInMonth(tt.month, tt.year, tt.calcType))
		})
	}
}

func TestPreviousPeriod(t *testing.T) {
	m, y := previousPeriod(1, 2026)
	assert.Equal(t, 12, m)
	assert.Equal(t, 2025, y)

	m, y = previousPeriod(6, 2026)
	assert.Equal(t, 5, m)
	assert.Equal(t, 2026, y)
}

func TestComputePayroll_BaseOnly(t *testing.T) {
	res := computePayroll(calcInput{
		MonthlySalary: d("30000"),
		CarryForward:  decimal.Zero,
		TotalDays:     31,
	})

	assert.True(t, res.GrossSalary.Equal(d("30000")))
	assert.True(t, res.PerDaySalary.Equal(d("967.74")), "got %s", res.PerDaySalary)
	assert.True(t, res.AttendanceDeduction.IsZero())
	assert.True(t, res.FinalSalary.Equal(d("30000")))
	assert.True(t, res.NetSalary.Equal(d("30000")))
}

func TestComputePayroll_AttendanceDeduction(t *testing.T) {
	res := computePayroll(calcInput{
		MonthlySalary:      d("31000"),
		TotalDays:          31,
		DeductibleAbsences: 3,
	})

	assert.True(t, res.PerDaySalary.Equal(d("1000")))
	assert.True(t, res.AttendanceDeduction.Equal(d("3000")))
	assert.True(t, res.FinalSalary.Equal(d("28000")))
	assert.True(t, res.NetSalary.Equal(d("28000")))
}

func TestComputePayroll_CarryForwardExcludedFromDivisor(t *testing.T) {
	// Carry-forward raises gross but the per-day rate stays base/days.
	res := computePayroll(calcInput{
		MonthlySalary:      d("31000"),
		CarryForward:       d("5000"),
		TotalDays:          31,
		DeductibleAbsences: 2,
	})

	assert.True(t, res.GrossSalary.Equal(d("36000")))
	assert.True(t, res.PerDaySalary.Equal(d("1000")))
	assert.True(t, res.AttendanceDeduction.Equal(d("2000")))
	assert.True(t, res.FinalSalary.Equal(d("34000")))
	assert.True(t, res.NetSalary.Equal(d("34000")))
}

func TestComputePayroll_DepositDeduction(t *testing.T) {
	t.Run("installment below remaining", func(t *testing.T) {
		res := computePayroll(calcInput{
			MonthlySalary: d("30000"),
			TotalDays:     30,
			Deposit: &ledger.TeacherSecurityDeposit{
				Status:            ledger.DepositActive,
				RemainingBalance:  d("8000"),
				InstallmentAmount: d("1000"),
			},
		})
		assert.True(t, res.DepositDeduction.Equal(d("1000")))
		assert.True(t, res.NetSalary.Equal(d("29000")))
	})

	t.Run("remaining below installment", func(t *testing.T) {
		res := computePayroll(calcInput{
			MonthlySalary: d("30000"),
			TotalDays:     30,
			Deposit: &ledger.TeacherSecurityDeposit{
				Status:            ledger.DepositActive,
				RemainingBalance:  d("400"),
				InstallmentAmount: d("1000"),
			},
		})
		assert.True(t, res.DepositDeduction.Equal(d("400")))
	})

	t.Run("completed deposit ignored", func(t *testing.T) {
		res := computePayroll(calcInput{
			MonthlySalary: d("30000"),
			TotalDays:     30,
			Deposit: &ledger.TeacherSecurityDeposit{
				Status:            ledger.DepositCompleted,
				RemainingBalance:  decimal.Zero,
				InstallmentAmount: d("1000"),
			},
		})
		assert.True(t, res.DepositDeduction.IsZero())
	})
}

func TestComputePayroll_AdvanceFullPayoff(t *testing.T) {
	res := computePayroll(calcInput{
		MonthlySalary: d("30000"),
		TotalDays:     30,
		Advances: []ledger.TeacherAdvance{
			{RemainingBalance: d("5000")},
			{RemainingBalance: d("2500")},
		},
	})

	assert.True(t, res.AdvanceDeduction.Equal(d("7500")))
	assert.True(t, res.NetSalary.Equal(d("22500")))
}

func TestComputePayroll_LoanInstallments(t *testing.T) {
	res := computePayroll(calcInput{
		MonthlySalary: d("30000"),
		TotalDays:     30,
		Loans: []ledger.TeacherLoan{
			{ID: "loan-1", InstallmentAmount: d("2000"), RemainingBalance: d("10000")},
			{ID: "loan-2", InstallmentAmount: d("2000"), RemainingBalance: d("700")},
			{ID: "loan-3", InstallmentAmount: d("2000"), RemainingBalance: decimal.Zero},
		},
	})

	require.Len(t, res.LoanDeductions, 2)
	assert.Equal(t, "loan-1", res.LoanDeductions[0].LoanID)
	assert.True(t, res.LoanDeductions[0].Amount.Equal(d("2000")))
	assert.Equal(t, "loan-2", res.LoanDeductions[1].LoanID)
	assert.True(t, res.LoanDeductions[1].Amount.Equal(d("700")))
	assert.True(t, res.LoanDeduction.Equal(d("2700")))
	assert.True(t, res.NetSalary.Equal(d("27300")))
}

func TestComputePayroll_NegativeNet(t *testing.T) {
	in := calcInput{
		MonthlySalary: d("10000"),
		TotalDays:     30,
		Advances: []ledger.TeacherAdvance{
			{RemainingBalance: d("12000")},
		},
	}

	t.Run("allowed by default", func(t *testing.T) {
		res := computePayroll(in)
		assert.True(t, res.NetSalary.Equal(d("-2000")))
	})

	t.Run("clamped to zero when floored", func(t *testing.T) {
		floored := in
		floored.FloorNetSalary = true
		res := computePayroll(floored)
		assert.True(t, res.NetSalary.IsZero())
		// The ledger deductions are unchanged, only the payout is clamped.
		assert.True(t, res.AdvanceDeduction.Equal(d("12000")))
	})
}

func TestComputePayroll_Conservation(t *testing.T) {
	in := calcInput{
		MonthlySalary:      d("45678.90"),
		CarryForward:       d("1234.56"),
		TotalDays:          27,
		DeductibleAbsences: 4,
		Deposit: &ledger.TeacherSecurityDeposit{
			Status:            ledger.DepositActive,
			RemainingBalance:  d("3000"),
			InstallmentAmount: d("750"),
		},
		Advances: []ledger.TeacherAdvance{{RemainingBalance: d("2000")}},
		Loans:    []ledger.TeacherLoan{{ID: "l1", InstallmentAmount: d("1200"), RemainingBalance: d("9000")}},
	}

	res := computePayroll(in)

	assert.True(t, res.FinalSalary.Equal(res.GrossSalary.Sub(res.AttendanceDeduction)))

	expectedNet := res.GrossSalary.
		Sub(res.AttendanceDeduction).
		Sub(res.DepositDeduction).
		Sub(res.AdvanceDeduction).
		Sub(res.LoanDeduction)
	assert.True(t, res.NetSalary.Equal(expectedNet))

	assert.Equal(t, int32(-2), res.PerDaySalary.Exponent())
}
