package salary

import (
	"github.com/edusuite/school-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SetSalaryRequest struct {
	TeacherID     string          `json:"teacher_id"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	EffectiveFrom *string         `json:"effective_from,omitempty"`
}

func (r *SetSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if r.MonthlySalary.IsNegative() || r.MonthlySalary.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be positive"})
	}
	if r.EffectiveFrom != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveFrom); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryResponse struct {
	ID            string          `json:"id"`
	SchoolID      string          `json:"school_id"`
	TeacherID     string          `json:"teacher_id"`
	TeacherName   string          `json:"teacher_name,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	EffectiveFrom string          `json:"effective_from"`
	IsActive      bool            `json:"is_active"`
}
