package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// TeacherSalary - one active base salary per teacher per school.
// Superseded rows are kept with is_active = false, never deleted.
type TeacherSalary struct {
	ID            string
	SchoolID      string
	TeacherID     string
	MonthlySalary decimal.Decimal
	EffectiveFrom time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	TeacherName *string
}
