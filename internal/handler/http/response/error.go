package response

import (
	"errors"
	"net/http"

	"github.com/edusuite/school-backend-go/internal/domain/attendance"
	"github.com/edusuite/school-backend-go/internal/domain/ledger"
	"github.com/edusuite/school-backend-go/internal/domain/payroll"
	"github.com/edusuite/school-backend-go/internal/domain/salary"
	"github.com/edusuite/school-backend-go/internal/domain/user"
	"github.com/edusuite/school-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User / access errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, user.ErrSchoolIDRequired):
		Forbidden(w, "No school associated with this account")
	case errors.Is(err, user.ErrPayrollAccessRequired):
		Forbidden(w, "Payroll management access required")
	case errors.Is(err, user.ErrAttendanceAccessRequired):
		Forbidden(w, "Attendance management access required")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAbsenceNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, attendance.ErrAbsenceAlreadyMarked):
		Conflict(w, "Absence already marked for this teacher and date")
	case errors.Is(err, attendance.ErrPeriodLocked):
		Conflict(w, "Payroll for this month is locked")
	case errors.Is(err, attendance.ErrSettingsNotFound):
		NotFound(w, "Attendance settings not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid absence status", nil)

	// Ledger domain errors
	case errors.Is(err, ledger.ErrDepositNotFound):
		NotFound(w, "Security deposit not found")
	case errors.Is(err, ledger.ErrActiveDepositExists):
		Conflict(w, "Teacher already has an active security deposit")
	case errors.Is(err, ledger.ErrDepositBalanceMismatch):
		Conflict(w, "Deposit balances do not add up")
	case errors.Is(err, ledger.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, ledger.ErrAdvanceNotPending):
		Conflict(w, "Advance has already been processed")
	case errors.Is(err, ledger.ErrLoanNotFound):
		NotFound(w, "Loan not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPeriodLocked):
		Conflict(w, "Payroll for this period has already been generated")
	case errors.Is(err, payroll.ErrNoActiveSalaries):
		BadRequest(w, "No teachers with an active salary", nil)
	case errors.Is(err, payroll.ErrAlreadyPaid):
		Conflict(w, "Payroll record is already paid")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid month or year", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
