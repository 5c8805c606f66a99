package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for teacher absence
// records and per-school attendance settings.
// All methods include schoolID parameter to prevent cross-school data access.
type AttendanceRepository interface {
	// Create inserts a new absence record. A duplicate (teacher, date)
	// pair is rejected by the uniqueness constraint.
	Create(ctx context.Context, rec TeacherAttendanceRecord) (TeacherAttendanceRecord, error)

	// GetByID retrieves one absence record.
	GetByID(ctx context.Context, id string, schoolID string) (TeacherAttendanceRecord, error)

	// Delete removes an absence record.
	Delete(ctx context.Context, id string, schoolID string) error

	// List retrieves absence records with filters and pagination.
	List(ctx context.Context, schoolID string, filter AbsenceFilter) ([]TeacherAttendanceRecord, int64, error)

	// CountDeductibleInRange counts is_deductible records for one teacher
	// within [start, end] inclusive. Drives the attendance deduction.
	CountDeductibleInRange(ctx context.Context, teacherID string, schoolID string, start, end time.Time) (int, error)

	// CountYearlyAbsences counts all absence records for one teacher in a
	// calendar year. Used at mark-time to decide deductibility.
	CountYearlyAbsences(ctx context.Context, teacherID string, schoolID string, year int) (int, error)

	// GetSettings returns the school's attendance settings.
	GetSettings(ctx context.Context, schoolID string) (SchoolAttendanceSettings, error)

	// UpsertSettings creates or updates the school's attendance settings.
	UpsertSettings(ctx context.Context, settings SchoolAttendanceSettings) (SchoolAttendanceSettings, error)
}
