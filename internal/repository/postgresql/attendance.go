package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edusuite/school-backend-go/internal/domain/attendance"
	"github.com/edusuite/school-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.TeacherAttendanceRecord) (attendance.TeacherAttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teacher_attendance_records (school_id, teacher_id, date, status, is_deductible, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.SchoolID, rec.TeacherID, rec.Date, rec.Status, rec.IsDeductible, rec.Reason,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_teacher_attendance_date") {
			return attendance.TeacherAttendanceRecord{}, attendance.ErrAbsenceAlreadyMarked
		}
		return attendance.TeacherAttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string, schoolID string) (attendance.TeacherAttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, school_id, teacher_id, date, status, is_deductible, reason, created_at, updated_at
		FROM teacher_attendance_records
		WHERE id = $1 AND school_id = $2
	`

	var rec attendance.TeacherAttendanceRecord
	err := q.QueryRow(ctx, query, id, schoolID).Scan(
		&rec.ID, &rec.SchoolID, &rec.TeacherID, &rec.Date, &rec.Status,
		&rec.IsDeductible, &rec.Reason, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.TeacherAttendanceRecord{}, attendance.ErrAbsenceNotFound
		}
		return attendance.TeacherAttendanceRecord{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string, schoolID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM teacher_attendance_records WHERE id = $1 AND school_id = $2 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id, schoolID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAbsenceNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, schoolID string, filter attendance.AbsenceFilter) ([]attendance.TeacherAttendanceRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM teacher_attendance_records tar
		JOIN teachers t ON tar.teacher_id = t.id
		WHERE tar.school_id = $1
	`
	args := []interface{}{schoolID}
	argIdx := 2

	if filter.TeacherID != nil {
		baseQuery += fmt.Sprintf(" AND tar.teacher_id = $%d", argIdx)
		args = append(args, *filter.TeacherID)
		argIdx++
	}
	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND EXTRACT(MONTH FROM tar.date) = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseQuery += fmt.Sprintf(" AND EXTRACT(YEAR FROM tar.date) = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT tar.id, tar.school_id, tar.teacher_id, tar.date, tar.status,
			   tar.is_deductible, tar.reason, tar.created_at, tar.updated_at,
			   t.full_name as teacher_name
		%s
		ORDER BY tar.date DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.TeacherAttendanceRecord
	for rows.Next() {
		var rec attendance.TeacherAttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.SchoolID, &rec.TeacherID, &rec.Date, &rec.Status,
			&rec.IsDeductible, &rec.Reason, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.TeacherName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, nil
}

// CountDeductibleInRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountDeductibleInRange(ctx context.Context, teacherID string, schoolID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM teacher_attendance_records
		WHERE teacher_id = $1 AND school_id = $2
		  AND date >= $3 AND date <= $4
		  AND is_deductible = true
	`

	var count int
	err := q.QueryRow(ctx, query, teacherID, schoolID, start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count deductible absences: %w", err)
	}

	return count, nil
}

// CountYearlyAbsences implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountYearlyAbsences(ctx context.Context, teacherID string, schoolID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM teacher_attendance_records
		WHERE teacher_id = $1 AND school_id = $2
		  AND EXTRACT(YEAR FROM date) = $3
	`

	var count int
	err := q.QueryRow(ctx, query, teacherID, schoolID, year).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count yearly absences: %w", err)
	}

	return count, nil
}

// GetSettings implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetSettings(ctx context.Context, schoolID string) (attendance.SchoolAttendanceSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, school_id, max_yearly_absences, salary_calculation_type, floor_net_salary, created_at, updated_at
		FROM school_attendance_settings
		WHERE school_id = $1
	`

	var s attendance.SchoolAttendanceSettings
	err := q.QueryRow(ctx, query, schoolID).Scan(
		&s.ID, &s.SchoolID, &s.MaxYearlyAbsences, &s.SalaryCalculationType,
		&s.FloorNetSalary, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.SchoolAttendanceSettings{}, attendance.ErrSettingsNotFound
		}
		return attendance.SchoolAttendanceSettings{}, fmt.Errorf("failed to get attendance settings: %w", err)
	}

	return s, nil
}

// UpsertSettings implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpsertSettings(ctx context.Context, settings attendance.SchoolAttendanceSettings) (attendance.SchoolAttendanceSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO school_attendance_settings (school_id, max_yearly_absences, salary_calculation_type, floor_net_salary)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (school_id) DO UPDATE SET
			max_yearly_absences = EXCLUDED.max_yearly_absences,
			salary_calculation_type = EXCLUDED.salary_calculation_type,
			floor_net_salary = EXCLUDED.floor_net_salary,
			updated_at = NOW()
		RETURNING id, school_id, max_yearly_absences, salary_calculation_type, floor_net_salary, created_at, updated_at
	`

	var s attendance.SchoolAttendanceSettings
	err := q.QueryRow(ctx, query,
		settings.SchoolID, settings.MaxYearlyAbsences, settings.SalaryCalculationType, settings.FloorNetSalary,
	).Scan(
		&s.ID, &s.SchoolID, &s.MaxYearlyAbsences, &s.SalaryCalculationType,
		&s.FloorNetSalary, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return attendance.SchoolAttendanceSettings{}, fmt.Errorf("failed to upsert attendance settings: %w", err)
	}

	return s, nil
}
