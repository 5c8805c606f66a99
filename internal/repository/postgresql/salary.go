package postgresql

import (
	"context"
	"fmt"

	"github.com/edusuite/school-backend-go/internal/domain/salary"
	"github.com/edusuite/school-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) Create(ctx context.Context, s salary.TeacherSalary) (salary.TeacherSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teacher_salaries (school_id, teacher_id, monthly_salary, effective_from, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id, school_id, teacher_id, monthly_salary, effective_from, is_active, created_at, updated_at
	`

	var created salary.TeacherSalary
	err := q.QueryRow(ctx, query,
		s.SchoolID, s.TeacherID, s.MonthlySalary, s.EffectiveFrom,
	).Scan(
		&created.ID, &created.SchoolID, &created.TeacherID, &created.MonthlySalary,
		&created.EffectiveFrom, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return salary.TeacherSalary{}, fmt.Errorf("failed to create teacher salary: %w", err)
	}

	return created, nil
}

func (r *salaryRepository) DeactivateForTeacher(ctx context.Context, teacherID string, schoolID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teacher_salaries
		SET is_active = false, updated_at = NOW()
		WHERE teacher_id = $1 AND school_id = $2 AND is_active = true
	`

	_, err := q.Exec(ctx, query, teacherID, schoolID)
	if err != nil {
		return fmt.Errorf("failed to deactivate teacher salaries: %w", err)
	}

	return nil
}

func (r *salaryRepository) GetActiveBySchoolID(ctx context.Context, schoolID string) ([]salary.TeacherSalary, error) {
	q := GetQuerier(ctx, r.db)

	// DISTINCT ON guards against more than one active row per teacher;
	// the newest effective_from wins.
	query := `
		SELECT DISTINCT ON (ts.teacher_id)
			   ts.id, ts.school_id, ts.teacher_id, ts.monthly_salary,
			   ts.effective_from, ts.is_active, ts.created_at, ts.updated_at,
			   t.full_name as teacher_name
		FROM teacher_salaries ts
		JOIN teachers t ON ts.teacher_id = t.id
		WHERE ts.school_id = $1 AND ts.is_active = true
		ORDER BY ts.teacher_id, ts.effective_from DESC
	`

	rows, err := q.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active salaries: %w", err)
	}
	defer rows.Close()

	var salaries []salary.TeacherSalary
	for rows.Next() {
		var s salary.TeacherSalary
		if err := rows.Scan(
			&s.ID, &s.SchoolID, &s.TeacherID, &s.MonthlySalary,
			&s.EffectiveFrom, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&s.TeacherName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan teacher salary: %w", err)
		}
		salaries = append(salaries, s)
	}

	return salaries, nil
}

func (r *salaryRepository) GetHistoryByTeacher(ctx context.Context, teacherID string, schoolID string) ([]salary.TeacherSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, school_id, teacher_id, monthly_salary, effective_from, is_active, created_at, updated_at
		FROM teacher_salaries
		WHERE teacher_id = $1 AND school_id = $2
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, teacherID, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary history: %w", err)
	}
	defer rows.Close()

	var salaries []salary.TeacherSalary
	for rows.Next() {
		var s salary.TeacherSalary
		if err := rows.Scan(
			&s.ID, &s.SchoolID, &s.TeacherID, &s.MonthlySalary,
			&s.EffectiveFrom, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan teacher salary: %w", err)
		}
		salaries = append(salaries, s)
	}

	return salaries, nil
}
