package postgresql

import (
	"context"
	"fmt"

	"github.com/edusuite/school-backend-go/internal/domain/payroll"
	"github.com/edusuite/school-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, school_id, teacher_id, month, year, run_id, monthly_salary, gross_salary,
	total_days_in_month, deductible_absences, per_day_salary, total_deduction,
	security_deposit_deduction, advance_deduction, loan_deduction,
	final_salary, net_salary, status, paid_date, is_locked, created_at, updated_at
`

func scanPayroll(row pgx.Row) (payroll.TeacherPayroll, error) {
	var p payroll.TeacherPayroll
	err := row.Scan(
		&p.ID, &p.SchoolID, &p.TeacherID, &p.Month, &p.Year, &p.RunID,
		&p.MonthlySalary, &p.GrossSalary, &p.TotalDaysInMonth, &p.DeductibleAbsences,
		&p.PerDaySalary, &p.TotalDeduction, &p.SecurityDepositDeduction,
		&p.AdvanceDeduction, &p.LoanDeduction, &p.FinalSalary, &p.NetSalary,
		&p.Status, &p.PaidDate, &p.IsLocked, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// LockPeriod implements payroll.PayrollRepository.
// The advisory lock is transaction-scoped: it is released at commit or
// rollback, so a second concurrent run blocks here until the first one
// finishes and then sees its lock flag.
func (r *payrollRepository) LockPeriod(ctx context.Context, schoolID string, month, year int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2::text || ':' || $3::text, 0))`,
		schoolID, month, year,
	)
	if err != nil {
		return fmt.Errorf("failed to lock payroll period: %w", err)
	}

	return nil
}

// IsPeriodLocked implements payroll.PayrollRepository.
func (r *payrollRepository) IsPeriodLocked(ctx context.Context, schoolID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM teacher_payrolls
			WHERE school_id = $1 AND month = $2 AND year = $3 AND is_locked = true
		)
	`

	var locked bool
	if err := q.QueryRow(ctx, query, schoolID, month, year).Scan(&locked); err != nil {
		return false, fmt.Errorf("failed to check payroll lock: %w", err)
	}

	return locked, nil
}

// Upsert implements payroll.PayrollRepository.
func (r *payrollRepository) Upsert(ctx context.Context, rec payroll.TeacherPayroll) (payroll.TeacherPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teacher_payrolls (
			school_id, teacher_id, month, year, run_id, monthly_salary, gross_salary,
			total_days_in_month, deductible_absences, per_day_salary, total_deduction,
			security_deposit_deduction, advance_deduction, loan_deduction,
			final_salary, net_salary, status, is_locked
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (teacher_id, month, year) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			monthly_salary = EXCLUDED.monthly_salary,
			gross_salary = EXCLUDED.gross_salary,
			total_days_in_month = EXCLUDED.total_days_in_month,
			deductible_absences = EXCLUDED.deductible_absences,
			per_day_salary = EXCLUDED.per_day_salary,
			total_deduction = EXCLUDED.total_deduction,
			security_deposit_deduction = EXCLUDED.security_deposit_deduction,
			advance_deduction = EXCLUDED.advance_deduction,
			loan_deduction = EXCLUDED.loan_deduction,
			final_salary = EXCLUDED.final_salary,
			net_salary = EXCLUDED.net_salary,
			status = EXCLUDED.status,
			is_locked = EXCLUDED.is_locked,
			updated_at = NOW()
		RETURNING ` + payrollColumns

	rec2, err := scanPayroll(q.QueryRow(ctx, query,
		rec.SchoolID, rec.TeacherID, rec.Month, rec.Year, rec.RunID,
		rec.MonthlySalary, rec.GrossSalary, rec.TotalDaysInMonth, rec.DeductibleAbsences,
		rec.PerDaySalary, rec.TotalDeduction, rec.SecurityDepositDeduction,
		rec.AdvanceDeduction, rec.LoanDeduction, rec.FinalSalary, rec.NetSalary,
		rec.Status, rec.IsLocked,
	))
	if err != nil {
		return payroll.TeacherPayroll{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return rec2, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string, schoolID string) (payroll.TeacherPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tp.id, tp.school_id, tp.teacher_id, tp.month, tp.year, tp.run_id,
			   tp.monthly_salary, tp.gross_salary, tp.total_days_in_month, tp.deductible_absences,
			   tp.per_day_salary, tp.total_deduction, tp.security_deposit_deduction,
			   tp.advance_deduction, tp.loan_deduction, tp.final_salary, tp.net_salary,
			   tp.status, tp.paid_date, tp.is_locked, tp.created_at, tp.updated_at,
			   t.full_name as teacher_name
		FROM teacher_payrolls tp
		JOIN teachers t ON tp.teacher_id = t.id
		WHERE tp.id = $1 AND tp.school_id = $2
	`

	var p payroll.TeacherPayroll
	err := q.QueryRow(ctx, query, id, schoolID).Scan(
		&p.ID, &p.SchoolID, &p.TeacherID, &p.Month, &p.Year, &p.RunID,
		&p.MonthlySalary, &p.GrossSalary, &p.TotalDaysInMonth, &p.DeductibleAbsences,
		&p.PerDaySalary, &p.TotalDeduction, &p.SecurityDepositDeduction,
		&p.AdvanceDeduction, &p.LoanDeduction, &p.FinalSalary, &p.NetSalary,
		&p.Status, &p.PaidDate, &p.IsLocked, &p.CreatedAt, &p.UpdatedAt,
		&p.TeacherName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.TeacherPayroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.TeacherPayroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

// GetPendingByTeacherPeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetPendingByTeacherPeriod(ctx context.Context, teacherID string, schoolID string, month, year int) (*payroll.TeacherPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM teacher_payrolls
		WHERE teacher_id = $1 AND school_id = $2 AND month = $3 AND year = $4
		  AND status = 'pending'
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, teacherID, schoolID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending payroll: %w", err)
	}

	return &p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, schoolID string, filter payroll.PayrollFilter) ([]payroll.TeacherPayroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM teacher_payrolls tp
		JOIN teachers t ON tp.teacher_id = t.id
		WHERE tp.school_id = $1
	`
	args := []interface{}{schoolID}
	argIdx := 2

	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND tp.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseQuery += fmt.Sprintf(" AND tp.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND tp.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.TeacherID != nil {
		baseQuery += fmt.Sprintf(" AND tp.teacher_id = $%d", argIdx)
		args = append(args, *filter.TeacherID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	sortColumn := "tp.created_at"
	if filter.SortBy != "" {
		allowedColumns := map[string]string{
			"created_at":   "tp.created_at",
			"period":       "tp.year DESC, tp.month",
			"teacher_name": "t.full_name",
			"net_salary":   "tp.net_salary",
		}
		if col, ok := allowedColumns[filter.SortBy]; ok {
			sortColumn = col
		}
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT tp.id, tp.school_id, tp.teacher_id, tp.month, tp.year, tp.run_id,
			   tp.monthly_salary, tp.gross_salary, tp.total_days_in_month, tp.deductible_absences,
			   tp.per_day_salary, tp.total_deduction, tp.security_deposit_deduction,
			   tp.advance_deduction, tp.loan_deduction, tp.final_salary, tp.net_salary,
			   tp.status, tp.paid_date, tp.is_locked, tp.created_at, tp.updated_at,
			   t.full_name as teacher_name
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseQuery, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.TeacherPayroll
	for rows.Next() {
		var p payroll.TeacherPayroll
		if err := rows.Scan(
			&p.ID, &p.SchoolID, &p.TeacherID, &p.Month, &p.Year, &p.RunID,
			&p.MonthlySalary, &p.GrossSalary, &p.TotalDaysInMonth, &p.DeductibleAbsences,
			&p.PerDaySalary, &p.TotalDeduction, &p.SecurityDepositDeduction,
			&p.AdvanceDeduction, &p.LoanDeduction, &p.FinalSalary, &p.NetSalary,
			&p.Status, &p.PaidDate, &p.IsLocked, &p.CreatedAt, &p.UpdatedAt,
			&p.TeacherName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, totalCount, nil
}

// MarkPaid implements payroll.PayrollRepository.
func (r *payrollRepository) MarkPaid(ctx context.Context, id string, schoolID string) (payroll.TeacherPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teacher_payrolls
		SET status = 'paid', paid_date = NOW(), updated_at = NOW()
		WHERE id = $1 AND school_id = $2 AND status = 'pending'
		RETURNING ` + payrollColumns

	p, err := scanPayroll(q.QueryRow(ctx, query, id, schoolID))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either missing or already paid; disambiguate for the caller.
			if _, getErr := r.GetByID(ctx, id, schoolID); getErr == nil {
				return payroll.TeacherPayroll{}, payroll.ErrAlreadyPaid
			}
			return payroll.TeacherPayroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.TeacherPayroll{}, fmt.Errorf("failed to mark payroll paid: %w", err)
	}

	return p, nil
}

// GetSummary implements payroll.PayrollRepository.
func (r *payrollRepository) GetSummary(ctx context.Context, schoolID string, month, year int) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) as total_teachers,
			COALESCE(SUM(monthly_salary), 0) as total_monthly_salary,
			COALESCE(SUM(gross_salary), 0) as total_gross_salary,
			COALESCE(SUM(total_deduction), 0) as total_attendance_deduction,
			COALESCE(SUM(security_deposit_deduction), 0) as total_deposit_deduction,
			COALESCE(SUM(advance_deduction), 0) as total_advance_deduction,
			COALESCE(SUM(loan_deduction), 0) as total_loan_deduction,
			COALESCE(SUM(net_salary), 0) as total_net_salary,
			COUNT(*) FILTER (WHERE status = 'pending') as pending_count,
			COUNT(*) FILTER (WHERE status = 'paid') as paid_count
		FROM teacher_payrolls
		WHERE school_id = $1 AND month = $2 AND year = $3
	`

	var summary payroll.PayrollSummaryResponse
	err := q.QueryRow(ctx, query, schoolID, month, year).Scan(
		&summary.TotalTeachers, &summary.TotalMonthlySalary, &summary.TotalGrossSalary,
		&summary.TotalAttendanceDeduction, &summary.TotalDepositDeduction,
		&summary.TotalAdvanceDeduction, &summary.TotalLoanDeduction,
		&summary.TotalNetSalary, &summary.PendingCount, &summary.PaidCount,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	summary.Month = month
	summary.Year = year

	return summary, nil
}
