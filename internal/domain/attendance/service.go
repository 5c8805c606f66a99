package attendance

import "context"

// AttendanceService defines business logic for absence marking.
type AttendanceService interface {
	// MarkAbsence records an absence for a teacher on a date. Deductibility
	// is decided here, from the teacher's yearly absence count against the
	// school's free allowance. Refused when the month's payroll is locked.
	MarkAbsence(ctx context.Context, req MarkAbsenceRequest) (AbsenceResponse, error)

	// DeleteAbsence removes an absence record, unless the month is locked.
	DeleteAbsence(ctx context.Context, id string) error

	// ListAbsences retrieves absence records with filters.
	ListAbsences(ctx context.Context, filter AbsenceFilter) (ListAbsenceResponse, error)

	// GetSettings returns the school's attendance settings, with defaults
	// when none have been saved yet.
	GetSettings(ctx context.Context) (SettingsResponse, error)

	// UpdateSettings updates the school's attendance settings.
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
