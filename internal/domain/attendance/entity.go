package attendance

import "time"

// AbsenceStatus enum
type AbsenceStatus string

const (
	StatusAbsent      AbsenceStatus = "absent"
	StatusCasualLeave AbsenceStatus = "casual_leave"
	StatusEarnedLeave AbsenceStatus = "earned_leave"
)

// SalaryCalculationType decides the per-day divisor used by payroll.
type SalaryCalculationType string

const (
	CalcCalendarDays SalaryCalculationType = "calendar_days"
	CalcWorkingDays  SalaryCalculationType = "working_days"
)

// TeacherAttendanceRecord - one row per (teacher, date) absence event.
// Immutable once the owning month's payroll is locked.
type TeacherAttendanceRecord struct {
	ID           string
	SchoolID     string
	TeacherID    string
	Date         time.Time
	Status       AbsenceStatus
	IsDeductible bool
	Reason       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	TeacherName *string
}

// SchoolAttendanceSettings - one per school, read at payroll generation
// time and passed explicitly into the calculator.
type SchoolAttendanceSettings struct {
	ID                    string
	SchoolID              string
	MaxYearlyAbsences     int
	SalaryCalculationType SalaryCalculationType
	FloorNetSalary        bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
