package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/edusuite/school-backend-go/internal/domain/attendance"
	"github.com/edusuite/school-backend-go/internal/domain/payroll"
	"github.com/edusuite/school-backend-go/internal/domain/user"
	"github.com/edusuite/school-backend-go/internal/pkg/database"
	"github.com/edusuite/school-backend-go/internal/pkg/validator"
	"github.com/edusuite/school-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

const (
	defaultMaxYearlyAbsences = 12
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	payrollRepo    payroll.PayrollRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	payrollRepo payroll.PayrollRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		payrollRepo:    payrollRepo,
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

func (s *AttendanceServiceImpl) settingsOrDefault(ctx context.Context, schoolID string) (attendance.SchoolAttendanceSettings, error) {
	settings, err := s.attendanceRepo.GetSettings(ctx, schoolID)
	if err != nil {
		if errors.Is(err, attendance.ErrSettingsNotFound) {
			return attendance.SchoolAttendanceSettings{
				SchoolID:              schoolID,
				MaxYearlyAbsences:     defaultMaxYearlyAbsences,
				SalaryCalculationType: attendance.CalcCalendarDays,
				FloorNetSalary:        false,
			}, nil
		}
		return attendance.SchoolAttendanceSettings{}, err
	}
	return settings, nil
}

// MarkAbsence implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAbsence(ctx context.Context, req attendance.MarkAbsenceRequest) (attendance.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AbsenceResponse{}, err
	}

	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AbsenceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	status := attendance.AbsenceStatus(req.Status)

	var created attendance.TeacherAttendanceRecord

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Once payroll for the month is generated, its attendance is frozen.
		locked, err := s.payrollRepo.IsPeriodLocked(txCtx, schoolID, int(date.Month()), date.Year())
		if err != nil {
			return err
		}
		if locked {
			return attendance.ErrPeriodLocked
		}

		settings, err := s.settingsOrDefault(txCtx, schoolID)
		if err != nil {
			return err
		}

		// An unexcused absence always costs a day. Leave only starts
		// costing once the teacher has used up the free yearly allowance.
		isDeductible := status == attendance.StatusAbsent
		if !isDeductible {
			yearlyCount, err := s.attendanceRepo.CountYearlyAbsences(txCtx, req.TeacherID, schoolID, date.Year())
			if err != nil {
				return err
			}
			isDeductible = yearlyCount >= settings.MaxYearlyAbsences
		}

		created, err = s.attendanceRepo.Create(txCtx, attendance.TeacherAttendanceRecord{
			SchoolID:     schoolID,
			TeacherID:    req.TeacherID,
			Date:         date,
			Status:       status,
			IsDeductible: isDeductible,
			Reason:       req.Reason,
		})
		return err
	})
	if err != nil {
		return attendance.AbsenceResponse{}, err
	}

	return mapAbsenceToResponse(created), nil
}

// DeleteAbsence implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAbsence(ctx context.Context, id string) error {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.attendanceRepo.GetByID(txCtx, id, schoolID)
		if err != nil {
			return err
		}

		locked, err := s.payrollRepo.IsPeriodLocked(txCtx, schoolID, int(rec.Date.Month()), rec.Date.Year())
		if err != nil {
			return err
		}
		if locked {
			return attendance.ErrPeriodLocked
		}

		return s.attendanceRepo.Delete(txCtx, id, schoolID)
	})
}

// ListAbsences implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAbsences(ctx context.Context, filter attendance.AbsenceFilter) (attendance.ListAbsenceResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.ListAbsenceResponse{}, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, totalCount, err := s.attendanceRepo.List(ctx, schoolID, filter)
	if err != nil {
		return attendance.ListAbsenceResponse{}, err
	}

	data := make([]attendance.AbsenceResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, mapAbsenceToResponse(rec))
	}

	return attendance.ListAbsenceResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// GetSettings implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetSettings(ctx context.Context) (attendance.SettingsResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.SettingsResponse{}, err
	}

	settings, err := s.settingsOrDefault(ctx, schoolID)
	if err != nil {
		return attendance.SettingsResponse{}, err
	}

	return mapSettingsToResponse(settings), nil
}

// UpdateSettings implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateSettings(ctx context.Context, req attendance.UpdateSettingsRequest) (attendance.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SettingsResponse{}, err
	}

	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.SettingsResponse{}, err
	}

	settings, err := s.settingsOrDefault(ctx, schoolID)
	if err != nil {
		return attendance.SettingsResponse{}, err
	}

	if req.MaxYearlyAbsences != nil {
		settings.MaxYearlyAbsences = *req.MaxYearlyAbsences
	}
	if req.SalaryCalculationType != nil {
		settings.SalaryCalculationType = attendance.SalaryCalculationType(*req.SalaryCalculationType)
	}
	if req.FloorNetSalary != nil {
		settings.FloorNetSalary = *req.FloorNetSalary
	}

	saved, err := s.attendanceRepo.UpsertSettings(ctx, settings)
	if err != nil {
		return attendance.SettingsResponse{}, err
	}

	return mapSettingsToResponse(saved), nil
}

func mapAbsenceToResponse(rec attendance.TeacherAttendanceRecord) attendance.AbsenceResponse {
	resp := attendance.AbsenceResponse{
		ID:           rec.ID,
		SchoolID:     rec.SchoolID,
		TeacherID:    rec.TeacherID,
		Date:         rec.Date.Format("2006-01-02"),
		Status:       string(rec.Status),
		IsDeductible: rec.IsDeductible,
		Reason:       rec.Reason,
	}
	if rec.TeacherName != nil {
		resp.TeacherName = *rec.TeacherName
	}
	return resp
}

func mapSettingsToResponse(settings attendance.SchoolAttendanceSettings) attendance.SettingsResponse {
	return attendance.SettingsResponse{
		ID:                    settings.ID,
		SchoolID:              settings.SchoolID,
		MaxYearlyAbsences:     settings.MaxYearlyAbsences,
		SalaryCalculationType: string(settings.SalaryCalculationType),
		FloorNetSalary:        settings.FloorNetSalary,
	}
}
