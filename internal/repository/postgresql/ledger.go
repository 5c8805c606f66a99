package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/edusuite/school-backend-go/internal/domain/ledger"
	"github.com/edusuite/school-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepository{db: db}
}

// ========== DEPOSITS ==========

func (r *ledgerRepository) CreateDeposit(ctx context.Context, d ledger.TeacherSecurityDeposit) (ledger.TeacherSecurityDeposit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teacher_security_deposits (
			school_id, teacher_id, total_deposit, collected_amount, remaining_balance, installment_amount, status
		) VALUES ($1, $2, $3, 0, $3, $4, 'active')
		RETURNING id, school_id, teacher_id, total_deposit, collected_amount, remaining_balance,
			installment_amount, status, created_at, updated_at
	`

	var created ledger.TeacherSecurityDeposit
	err := q.QueryRow(ctx, query,
		d.SchoolID, d.TeacherID, d.TotalDeposit, d.InstallmentAmount,
	).Scan(
		&created.ID, &created.SchoolID, &created.TeacherID, &created.TotalDeposit,
		&created.CollectedAmount, &created.RemainingBalance, &created.InstallmentAmount,
		&created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_active_deposit_per_teacher") {
			return ledger.TeacherSecurityDeposit{}, ledger.ErrActiveDepositExists
		}
		return ledger.TeacherSecurityDeposit{}, fmt.Errorf("failed to create security deposit: %w", err)
	}

	return created, nil
}

func (r *ledgerRepository) GetActiveDepositByTeacher(ctx context.Context, teacherID string, schoolID string) (*ledger.TeacherSecurityDeposit, error) {
	q := GetQuerier(ctx, r.db)

	// Newest first: defensive against data predating the single-active
	// partial unique index.
	query := `
		SELECT id, school_id, teacher_id, total_deposit, collected_amount, remaining_balance,
			   installment_amount, status, created_at, updated_at
		FROM teacher_security_deposits
		WHERE teacher_id = $1 AND school_id = $2 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
	`

	var d ledger.TeacherSecurityDeposit
	err := q.QueryRow(ctx, query, teacherID, schoolID).Scan(
		&d.ID, &d.SchoolID, &d.TeacherID, &d.TotalDeposit,
		&d.CollectedAmount, &d.RemainingBalance, &d.InstallmentAmount,
		&d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active deposit: %w", err)
	}

	return &d, nil
}

func (r *ledgerRepository) ListDeposits(ctx context.Context, schoolID string) ([]ledger.TeacherSecurityDeposit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, school_id, teacher_id, total_deposit, collected_amount, remaining_balance,
			   installment_amount, status, created_at, updated_at
		FROM teacher_security_deposits
		WHERE school_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list security deposits: %w", err)
	}
	defer rows.Close()

	var deposits []ledger.TeacherSecurityDeposit
	for rows.Next() {
		var d ledger.TeacherSecurityDeposit
		if err := rows.Scan(
			&d.ID, &d.SchoolID, &d.TeacherID, &d.TotalDeposit,
			&d.CollectedAmount, &d.RemainingBalance, &d.InstallmentAmount,
			&d.Status, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan security deposit: %w", err)
		}
		deposits = append(deposits, d)
	}

	return deposits, nil
}

func (r *ledgerRepository) ApplyDepositDeduction(ctx context.Context, id string, schoolID string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	// Conservation: the same amount leaves remaining and enters collected.
	query := `
		UPDATE teacher_security_deposits
		SET collected_amount = collected_amount + $3,
			remaining_balance = remaining_balance - $3,
			status = CASE WHEN remaining_balance - $3 <= 0 THEN 'completed' ELSE status END,
			updated_at = NOW()
		WHERE id = $1 AND school_id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, schoolID, amount).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.ErrDepositNotFound
		}
		return fmt.Errorf("failed to apply deposit deduction: %w", err)
	}

	return nil
}

// ========== ADVANCES ==========

func (r *ledgerRepository) CreateAdvance(ctx context.Context, a ledger.TeacherAdvance) (ledger.TeacherAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teacher_advances (
			school_id, teacher_id, amount, deduction_month, deduction_year,
			deducted_amount, remaining_balance, status
		) VALUES ($1, $2, $3, $4, $5, 0, $3, 'pending')
		RETURNING id, school_id, teacher_id, amount, deduction_month, deduction_year,
			deducted_amount, remaining_balance, status, created_at, updated_at
	`

	var created ledger.TeacherAdvance
	err := q.QueryRow(ctx, query,
		a.SchoolID, a.TeacherID, a.Amount, a.DeductionMonth, a.DeductionYear,
	).Scan(
		&created.ID, &created.SchoolID, &created.TeacherID, &created.Amount,
		&created.DeductionMonth, &created.DeductionYear, &created.DeductedAmount,
		&created.RemainingBalance, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return ledger.TeacherAdvance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return created, nil
}

func (r *ledgerRepository) GetAdvanceByID(ctx context.Context, id string, schoolID string) (ledger.TeacherAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, school_id, teacher_id, amount, deduction_month, deduction_year,
			   deducted_amount, remaining_balance, status, created_at, updated_at
		FROM teacher_advances
		WHERE id = $1 AND school_id = $2
	`

	var a ledger.TeacherAdvance
	err := q.QueryRow(ctx, query, id, schoolID).Scan(
		&a.ID, &a.SchoolID, &a.TeacherID, &a.Amount,
		&a.DeductionMonth, &a.DeductionYear, &a.DeductedAmount,
		&a.RemainingBalance, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.TeacherAdvance{}, ledger.ErrAdvanceNotFound
		}
		return ledger.TeacherAdvance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return a, nil
}

func (r *ledgerRepository) ApproveAdvance(ctx context.Context, id string, schoolID string) (ledger.TeacherAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teacher_advances
		SET status = 'approved', updated_at = NOW()
		WHERE id = $1 AND school_id = $2 AND status = 'pending'
		RETURNING id, school_id, teacher_id, amount, deduction_month, deduction_year,
			deducted_amount, remaining_balance, status, created_at, updated_at
	`

	var a ledger.TeacherAdvance
	err := q.QueryRow(ctx, query, id, schoolID).Scan(
		&a.ID, &a.SchoolID, &a.TeacherID, &a.Amount,
		&a.DeductionMonth, &a.DeductionYear, &a.DeductedAmount,
		&a.RemainingBalance, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either missing or not pending; disambiguate for the caller.
			if _, getErr := r.GetAdvanceByID(ctx, id, schoolID); getErr == nil {
				return ledger.TeacherAdvance{}, ledger.ErrAdvanceNotPending
			}
			return ledger.TeacherAdvance{}, ledger.ErrAdvanceNotFound
		}
		return ledger.TeacherAdvance{}, fmt.Errorf("failed to approve advance: %w", err)
	}

	return a, nil
}

func (r *ledgerRepository) ListAdvances(ctx context.Context, schoolID string) ([]ledger.TeacherAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, school_id, teacher_id, amount, deduction_month, deduction_year,
			   deducted_amount, remaining_balance, status, created_at, updated_at
		FROM teacher_advances
		WHERE school_id = $1
		ORDER BY deduction_year DESC, deduction_month DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []ledger.TeacherAdvance
	for rows.Next() {
		var a ledger.TeacherAdvance
		if err := rows.Scan(
			&a.ID, &a.SchoolID, &a.TeacherID, &a.Amount,
			&a.DeductionMonth, &a.DeductionYear, &a.DeductedAmount,
			&a.RemainingBalance, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, nil
}

func (r *ledgerRepository) GetApprovedAdvances(ctx context.Context, teacherID string, schoolID string, month, year int) ([]ledger.TeacherAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, school_id, teacher_id, amount, deduction_month, deduction_year,
			   deducted_amount, remaining_balance, status, created_at, updated_at
		FROM teacher_advances
		WHERE teacher_id = $1 AND school_id = $2
		  AND deduction_month = $3 AND deduction_year = $4
		  AND status = 'approved'
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, teacherID, schoolID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved advances: %w", err)
	}
	defer rows.Close()

	var advances []ledger.TeacherAdvance
	for rows.Next() {
		var a ledger.TeacherAdvance
		if err := rows.Scan(
			&a.ID, &a.SchoolID, &a.TeacherID, &a.Amount,
			&a.DeductionMonth, &a.DeductionYear, &a.DeductedAmount,
			&a.RemainingBalance, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, nil
}

func (r *ledgerRepository) SettleAdvance(ctx context.Context, id string, schoolID string) error {
	q := GetQuerier(ctx, r.db)

	// Advances are paid off in one shot: the full amount is recorded as
	// deducted regardless of any prior partial state.
	query := `
		UPDATE teacher_advances
		SET deducted_amount = amount,
			remaining_balance = 0,
			status = 'deducted',
			updated_at = NOW()
		WHERE id = $1 AND school_id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, schoolID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.ErrAdvanceNotFound
		}
		return fmt.Errorf("failed to settle advance: %w", err)
	}

	return nil
}

// ========== LOANS ==========

func (r *ledgerRepository) CreateLoan(ctx context.Context, l ledger.TeacherLoan) (ledger.TeacherLoan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teacher_loans (
			school_id, teacher_id, total_loan_amount, remaining_balance,
			installment_amount, start_month, start_year, status
		) VALUES ($1, $2, $3, $3, $4, $5, $6, 'active')
		RETURNING id, school_id, teacher_id, total_loan_amount, remaining_balance,
			installment_amount, start_month, start_year, status, created_at, updated_at
	`

	var created ledger.TeacherLoan
	err := q.QueryRow(ctx, query,
		l.SchoolID, l.TeacherID, l.TotalLoanAmount, l.InstallmentAmount, l.StartMonth, l.StartYear,
	).Scan(
		&created.ID, &created.SchoolID, &created.TeacherID, &created.TotalLoanAmount,
		&created.RemainingBalance, &created.InstallmentAmount, &created.StartMonth,
		&created.StartYear, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return ledger.TeacherLoan{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return created, nil
}

func (r *ledgerRepository) ListLoans(ctx context.Context, schoolID string) ([]ledger.TeacherLoan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, school_id, teacher_id, total_loan_amount, remaining_balance,
			   installment_amount, start_month, start_year, status, created_at, updated_at
		FROM teacher_loans
		WHERE school_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	return scanLoans(rows)
}

func (r *ledgerRepository) GetActiveLoansByTeacher(ctx context.Context, teacherID string, schoolID string) ([]ledger.TeacherLoan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, school_id, teacher_id, total_loan_amount, remaining_balance,
			   installment_amount, start_month, start_year, status, created_at, updated_at
		FROM teacher_loans
		WHERE teacher_id = $1 AND school_id = $2 AND status = 'active' AND remaining_balance > 0
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, teacherID, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active loans: %w", err)
	}
	defer rows.Close()

	return scanLoans(rows)
}

func (r *ledgerRepository) ApplyLoanDeduction(ctx context.Context, id string, schoolID string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teacher_loans
		SET remaining_balance = remaining_balance - $3,
			status = CASE WHEN remaining_balance - $3 <= 0 THEN 'completed' ELSE status END,
			updated_at = NOW()
		WHERE id = $1 AND school_id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, schoolID, amount).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.ErrLoanNotFound
		}
		return fmt.Errorf("failed to apply loan deduction: %w", err)
	}

	return nil
}

func scanLoans(rows pgx.Rows) ([]ledger.TeacherLoan, error) {
	var loans []ledger.TeacherLoan
	for rows.Next() {
		var l ledger.TeacherLoan
		if err := rows.Scan(
			&l.ID, &l.SchoolID, &l.TeacherID, &l.TotalLoanAmount,
			&l.RemainingBalance, &l.InstallmentAmount, &l.StartMonth,
			&l.StartYear, &l.Status, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	return loans, nil
}
