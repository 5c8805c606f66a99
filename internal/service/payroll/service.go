package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edusuite/school-backend-go/internal/domain/attendance"
	"github.com/edusuite/school-backend-go/internal/domain/ledger"
	"github.com/edusuite/school-backend-go/internal/domain/payroll"
	"github.com/edusuite/school-backend-go/internal/domain/salary"
	"github.com/edusuite/school-backend-go/internal/domain/user"
	"github.com/edusuite/school-backend-go/internal/pkg/database"
	"github.com/edusuite/school-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	defaultMaxYearlyAbsences = 12
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	salaryRepo     salary.SalaryRepository
	attendanceRepo attendance.AttendanceRepository
	ledgerRepo     ledger.LedgerRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	salaryRepo salary.SalaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	ledgerRepo ledger.LedgerRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		salaryRepo:     salaryRepo,
		attendanceRepo: attendanceRepo,
		ledgerRepo:     ledgerRepo,
	}
}

// Helper to get school_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (schoolID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	schoolID, ok := claims["school_id"].(string)
	if !ok || schoolID == "" {
		return "", "", user.ErrSchoolIDRequired
	}

	userID, _ = claims["user_id"].(string)

	return schoolID, userID, nil
}

// settingsOrDefault falls back to the defaults a school gets before it
// has ever saved attendance settings.
func (s *PayrollServiceImpl) settingsOrDefault(ctx context.Context, schoolID string) (attendance.SchoolAttendanceSettings, error) {
	settings, err := s.attendanceRepo.GetSettings(ctx, schoolID)
	if err != nil {
		if errors.Is(err, attendance.ErrSettingsNotFound) {
			return attendance.SchoolAttendanceSettings{
				SchoolID:              schoolID,
				MaxYearlyAbsences:     defaultMaxYearlyAbsences,
				SalaryCalculationType: attendance.CalcCalendarDays,
				FloorNetSalary:        false,
			}, nil
		}
		return attendance.SchoolAttendanceSettings{}, err
	}
	return settings, nil
}

// GeneratePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var responses []payroll.PayrollResponse

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Serialize concurrent runs for the same period, then check the
		// lock flag inside the same transaction that will set it.
		if err := s.payrollRepo.LockPeriod(txCtx, schoolID, req.Month, req.Year); err != nil {
			return err
		}

		locked, err := s.payrollRepo.IsPeriodLocked(txCtx, schoolID, req.Month, req.Year)
		if err != nil {
			return err
		}
		if locked {
			return payroll.ErrPeriodLocked
		}

		settings, err := s.settingsOrDefault(txCtx, schoolID)
		if err != nil {
			return err
		}

		salaries, err := s.salaryRepo.GetActiveBySchoolID(txCtx, schoolID)
		if err != nil {
			return err
		}
		if len(salaries) == 0 {
			return payroll.ErrNoActiveSalaries
		}

		runID := uuid.NewString()
		totalDays := totalDaysInMonth(req.Month, req.Year, settings.SalaryCalculationType)
		monthStart, monthEnd := monthRange(req.Month, req.Year)
		prevMonth, prevYear := previousPeriod(req.Month, req.Year)

		for _, sal := range salaries {
			in, err := s.readCalcInput(txCtx, sal, schoolID, req.Month, req.Year, monthStart, monthEnd, prevMonth, prevYear)
			if err != nil {
				return err
			}
			in.TotalDays = totalDays
			in.FloorNetSalary = settings.FloorNetSalary

			result := computePayroll(in)

			rec := payroll.TeacherPayroll{
				SchoolID:                 schoolID,
				TeacherID:                sal.TeacherID,
				Month:                    req.Month,
				Year:                     req.Year,
				RunID:                    runID,
				MonthlySalary:            sal.MonthlySalary,
				GrossSalary:              result.GrossSalary,
				TotalDaysInMonth:         totalDays,
				DeductibleAbsences:       in.DeductibleAbsences,
				PerDaySalary:             result.PerDaySalary,
				TotalDeduction:           result.AttendanceDeduction,
				SecurityDepositDeduction: result.DepositDeduction,
				AdvanceDeduction:         result.AdvanceDeduction,
				LoanDeduction:            result.LoanDeduction,
				FinalSalary:              result.FinalSalary,
				NetSalary:                result.NetSalary,
				Status:                   payroll.PayrollStatusPending,
				IsLocked:                 true,
			}

			saved, err := s.payrollRepo.Upsert(txCtx, rec)
			if err != nil {
				return err
			}
			saved.TeacherName = sal.TeacherName

			if err := s.applyLedgerDeductions(txCtx, schoolID, in, result); err != nil {
				return err
			}

			responses = append(responses, mapPayrollToResponse(saved))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// readCalcInput gathers the per-teacher figures a payroll computation
// depends on: deductible absences, unpaid carry-forward from the
// previous month, and the three ledger balances.
func (s *PayrollServiceImpl) readCalcInput(
	ctx context.Context,
	sal salary.TeacherSalary,
	schoolID string,
	month, year int,
	monthStart, monthEnd time.Time,
	prevMonth, prevYear int,
) (calcInput, error) {
	in := calcInput{
		MonthlySalary: sal.MonthlySalary,
		CarryForward:  decimal.Zero,
	}

	absences, err := s.attendanceRepo.CountDeductibleInRange(ctx, sal.TeacherID, schoolID, monthStart, monthEnd)
	if err != nil {
		return calcInput{}, err
	}
	in.DeductibleAbsences = absences

	// Only a previous-month record still pending carries forward; a paid
	// one was already settled in cash.
	prev, err := s.payrollRepo.GetPendingByTeacherPeriod(ctx, sal.TeacherID, schoolID, prevMonth, prevYear)
	if err != nil {
		return calcInput{}, err
	}
	if prev != nil {
		in.CarryForward = prev.NetSalary
	}

	in.Deposit, err = s.ledgerRepo.GetActiveDepositByTeacher(ctx, sal.TeacherID, schoolID)
	if err != nil {
		return calcInput{}, err
	}

	in.Advances, err = s.ledgerRepo.GetApprovedAdvances(ctx, sal.TeacherID, schoolID, month, year)
	if err != nil {
		return calcInput{}, err
	}

	in.Loans, err = s.ledgerRepo.GetActiveLoansByTeacher(ctx, sal.TeacherID, schoolID)
	if err != nil {
		return calcInput{}, err
	}

	return in, nil
}

// applyLedgerDeductions writes the computed deductions back to the
// deposit, advance and loan ledgers. Runs inside the generation
// transaction so the ledgers and the payroll rows move together.
func (s *PayrollServiceImpl) applyLedgerDeductions(ctx context.Context, schoolID string, in calcInput, result calcResult) error {
	if in.Deposit != nil && result.DepositDeduction.IsPositive() {
		if err := s.ledgerRepo.ApplyDepositDeduction(ctx, in.Deposit.ID, schoolID, result.DepositDeduction); err != nil {
			return err
		}
	}

	for _, adv := range in.Advances {
		if err := s.ledgerRepo.SettleAdvance(ctx, adv.ID, schoolID); err != nil {
			return err
		}
	}

	for _, ld := range result.LoanDeductions {
		if err := s.ledgerRepo.ApplyLoanDeduction(ctx, ld.LoanID, schoolID, ld.Amount); err != nil {
			return err
		}
	}

	return nil
}

func mapPayrollToResponse(rec payroll.TeacherPayroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:                       rec.ID,
		SchoolID:                 rec.SchoolID,
		TeacherID:                rec.TeacherID,
		Month:                    rec.Month,
		Year:                     rec.Year,
		RunID:                    rec.RunID,
		MonthlySalary:            rec.MonthlySalary,
		GrossSalary:              rec.GrossSalary,
		TotalDaysInMonth:         rec.TotalDaysInMonth,
		DeductibleAbsences:       rec.DeductibleAbsences,
		PerDaySalary:             rec.PerDaySalary,
		TotalDeduction:           rec.TotalDeduction,
		SecurityDepositDeduction: rec.SecurityDepositDeduction,
		AdvanceDeduction:         rec.AdvanceDeduction,
		LoanDeduction:            rec.LoanDeduction,
		FinalSalary:              rec.FinalSalary,
		NetSalary:                rec.NetSalary,
		Status:                   string(rec.Status),
		IsLocked:                 rec.IsLocked,
	}
	if rec.TeacherName != nil {
		resp.TeacherName = *rec.TeacherName
	}
	if rec.PaidDate != nil {
		formatted := rec.PaidDate.Format("2006-01-02")
		resp.PaidDate = &formatted
	}
	return resp
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, id, schoolID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return mapPayrollToResponse(rec), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, totalCount, err := s.payrollRepo.List(ctx, schoolID, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	data := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, mapPayrollToResponse(rec))
	}

	return payroll.ListPayrollResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := s.payrollRepo.MarkPaid(ctx, id, schoolID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return mapPayrollToResponse(rec), nil
}

// GetSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	if !isValidPeriod(month, year) {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}

	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	return s.payrollRepo.GetSummary(ctx, schoolID, month, year)
}

func isValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 2100
}
