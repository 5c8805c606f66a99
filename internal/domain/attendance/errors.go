package attendance

import "errors"

// Attendance domain errors
var (
	ErrAbsenceNotFound      = errors.New("attendance record not found")
	ErrAbsenceAlreadyMarked = errors.New("an absence is already marked for this teacher on this date")
	ErrPeriodLocked         = errors.New("payroll for this month is locked, attendance cannot be changed")
	ErrSettingsNotFound     = errors.New("school attendance settings not found")
	ErrInvalidStatus        = errors.New("invalid absence status")
)
