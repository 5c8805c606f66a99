package attendance

import (
	"github.com/edusuite/school-backend-go/internal/pkg/validator"
)

type MarkAbsenceRequest struct {
	TeacherID string  `json:"teacher_id"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *MarkAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusAbsent), string(StatusCasualLeave), string(StatusEarnedLeave)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'absent', 'casual_leave' or 'earned_leave'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceResponse struct {
	ID           string  `json:"id"`
	SchoolID     string  `json:"school_id"`
	TeacherID    string  `json:"teacher_id"`
	TeacherName  string  `json:"teacher_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	IsDeductible bool    `json:"is_deductible"`
	Reason       *string `json:"reason,omitempty"`
}

type AbsenceFilter struct {
	TeacherID *string
	Month     *int
	Year      *int
	Page      int
	Limit     int
}

type ListAbsenceResponse struct {
	Data       []AbsenceResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type SettingsResponse struct {
	ID                    string `json:"id"`
	SchoolID              string `json:"school_id"`
	MaxYearlyAbsences     int    `json:"max_yearly_absences"`
	SalaryCalculationType string `json:"salary_calculation_type"`
	FloorNetSalary        bool   `json:"floor_net_salary"`
}

type UpdateSettingsRequest struct {
	MaxYearlyAbsences     *int    `json:"max_yearly_absences,omitempty"`
	SalaryCalculationType *string `json:"salary_calculation_type,omitempty"`
	FloorNetSalary        *bool   `json:"floor_net_salary,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MaxYearlyAbsences != nil && *r.MaxYearlyAbsences < 0 {
		errs = append(errs, validator.ValidationError{Field: "max_yearly_absences", Message: "must be non-negative"})
	}
	if r.SalaryCalculationType != nil &&
		!validator.IsInSlice(*r.SalaryCalculationType, []string{string(CalcCalendarDays), string(CalcWorkingDays)}) {
		errs = append(errs, validator.ValidationError{Field: "salary_calculation_type", Message: "must be 'calendar_days' or 'working_days'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
