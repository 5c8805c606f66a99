package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/edusuite/school-backend-go/internal/domain/salary"
	"github.com/edusuite/school-backend-go/internal/domain/user"
	"github.com/edusuite/school-backend-go/internal/pkg/database"
	"github.com/edusuite/school-backend-go/internal/pkg/validator"
	"github.com/edusuite/school-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type SalaryServiceImpl struct {
	db         *database.DB
	salaryRepo salary.SalaryRepository
}

func NewSalaryService(db *database.DB, salaryRepo salary.SalaryRepository) salary.SalaryService {
	return &SalaryServiceImpl{
		db:         db,
		salaryRepo: salaryRepo,
	}
}

// Helper to get school_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (schoolID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	schoolID, ok := claims["school_id"].(string)
	if !ok || schoolID == "" {
		return "", "", user.ErrSchoolIDRequired
	}

	userID, _ = claims["user_id"].(string)

	return schoolID, userID, nil
}

// SetSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) SetSalary(ctx context.Context, req salary.SetSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	effectiveFrom := time.Now().UTC()
	if req.EffectiveFrom != nil {
		effectiveFrom, _ = validator.IsValidDate(*req.EffectiveFrom)
	}

	var created salary.TeacherSalary

	// Supersede and insert together so no window exists with two active rows.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.salaryRepo.DeactivateForTeacher(txCtx, req.TeacherID, schoolID); err != nil {
			return err
		}

		created, err = s.salaryRepo.Create(txCtx, salary.TeacherSalary{
			SchoolID:      schoolID,
			TeacherID:     req.TeacherID,
			MonthlySalary: req.MonthlySalary,
			EffectiveFrom: effectiveFrom,
		})
		return err
	})
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return mapSalaryToResponse(created), nil
}

// ListActive implements salary.SalaryService.
func (s *SalaryServiceImpl) ListActive(ctx context.Context) ([]salary.SalaryResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	salaries, err := s.salaryRepo.GetActiveBySchoolID(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.SalaryResponse, 0, len(salaries))
	for _, sal := range salaries {
		responses = append(responses, mapSalaryToResponse(sal))
	}

	return responses, nil
}

// GetHistory implements salary.SalaryService.
func (s *SalaryServiceImpl) GetHistory(ctx context.Context, teacherID string) ([]salary.SalaryResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	salaries, err := s.salaryRepo.GetHistoryByTeacher(ctx, teacherID, schoolID)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.SalaryResponse, 0, len(salaries))
	for _, sal := range salaries {
		responses = append(responses, mapSalaryToResponse(sal))
	}

	return responses, nil
}

func mapSalaryToResponse(s salary.TeacherSalary) salary.SalaryResponse {
	resp := salary.SalaryResponse{
		ID:            s.ID,
		SchoolID:      s.SchoolID,
		TeacherID:     s.TeacherID,
		MonthlySalary: s.MonthlySalary,
		EffectiveFrom: s.EffectiveFrom.Format("2006-01-02"),
		IsActive:      s.IsActive,
	}
	if s.TeacherName != nil {
		resp.TeacherName = *s.TeacherName
	}
	return resp
}
