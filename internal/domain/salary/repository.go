package salary

import "context"

// SalaryRepository defines data access methods for teacher salaries.
// All methods include schoolID parameter to prevent cross-school data access.
type SalaryRepository interface {
	// Create inserts a new salary row; the caller is responsible for
	// deactivating the teacher's previous active row in the same transaction.
	Create(ctx context.Context, s TeacherSalary) (TeacherSalary, error)

	// DeactivateForTeacher flips is_active to false on all of the
	// teacher's current salary rows.
	DeactivateForTeacher(ctx context.Context, teacherID string, schoolID string) error

	// GetActiveBySchoolID returns the active salary rows for every teacher
	// in the school, newest effective_from first per teacher.
	GetActiveBySchoolID(ctx context.Context, schoolID string) ([]TeacherSalary, error)

	// GetHistoryByTeacher returns all salary rows for one teacher.
	GetHistoryByTeacher(ctx context.Context, teacherID string, schoolID string) ([]TeacherSalary, error)
}
