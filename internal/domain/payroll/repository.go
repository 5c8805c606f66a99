package payroll

import "context"

// PayrollRepository defines data access methods for generated payroll.
// All methods include schoolID parameter to prevent cross-school data access.
type PayrollRepository interface {
	// LockPeriod serializes concurrent generation attempts for the same
	// school/month/year by taking a transaction-scoped advisory lock.
	// Must be called inside a transaction before IsPeriodLocked.
	LockPeriod(ctx context.Context, schoolID string, month, year int) error

	// IsPeriodLocked reports whether any payroll row for the period has
	// is_locked set.
	IsPeriodLocked(ctx context.Context, schoolID string, month, year int) (bool, error)

	// Upsert writes a computed record keyed on (teacher_id, month, year);
	// an existing unlocked row is overwritten with the new values.
	Upsert(ctx context.Context, rec TeacherPayroll) (TeacherPayroll, error)

	// GetByID retrieves one payroll record.
	GetByID(ctx context.Context, id string, schoolID string) (TeacherPayroll, error)

	// GetPendingByTeacherPeriod returns the teacher's payroll row for the
	// period only when its status is pending. Used by carry-forward.
	GetPendingByTeacherPeriod(ctx context.Context, teacherID string, schoolID string, month, year int) (*TeacherPayroll, error)

	// List retrieves payroll records with filters and pagination.
	List(ctx context.Context, schoolID string, filter PayrollFilter) ([]TeacherPayroll, int64, error)

	// MarkPaid transitions a pending record to paid and stamps paid_date.
	MarkPaid(ctx context.Context, id string, schoolID string) (TeacherPayroll, error)

	// GetSummary aggregates the period's records for the monthly report.
	GetSummary(ctx context.Context, schoolID string, month, year int) (PayrollSummaryResponse, error)
}
