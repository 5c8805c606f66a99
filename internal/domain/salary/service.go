package salary

import "context"

// SalaryService defines business logic for teacher salary management.
type SalaryService interface {
	// SetSalary records a new base salary for a teacher, superseding any
	// previously active row.
	SetSalary(ctx context.Context, req SetSalaryRequest) (SalaryResponse, error)

	// ListActive returns the active salary of every teacher in the school.
	ListActive(ctx context.Context) ([]SalaryResponse, error)

	// GetHistory returns the full salary history of one teacher.
	GetHistory(ctx context.Context, teacherID string) ([]SalaryResponse, error)
}
