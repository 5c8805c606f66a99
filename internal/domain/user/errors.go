package user

import "errors"

var (
	ErrInvalidToken             = errors.New("invalid or missing access token")
	ErrSchoolIDRequired         = errors.New("school_id claim is required")
	ErrPayrollAccessRequired    = errors.New("payroll management access required")
	ErrAttendanceAccessRequired = errors.New("attendance management access required")
)
