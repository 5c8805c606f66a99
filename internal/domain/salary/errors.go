package salary

import "errors"

var (
	ErrSalaryNotFound  = errors.New("teacher salary not found")
	ErrTeacherNotFound = errors.New("teacher not found")
)
