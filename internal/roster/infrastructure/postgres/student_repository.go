package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	roster "campus-cloud/internal/roster/domain"
)

const defaultStudentsTable = "students"

// StudentRepository loads students with class and guardian joins.
type StudentRepository struct {
	db    *sql.DB
	table string
}

// StudentOption configures the repository.
type StudentOption func(*StudentRepository)

// WithStudentsTable overrides the default table name.
func WithStudentsTable(table string) StudentOption {
	return func(repo *StudentRepository) {
		if table != "" {
			repo.table = table
		}
	}
}

// NewStudentRepository constructs a repository.
func NewStudentRepository(db *sql.DB, opts ...StudentOption) *StudentRepository {
	repo := &StudentRepository{db: db, table: defaultStudentsTable}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// ListBySchool returns every student of a school with class and guardian
// names resolved. Missing joins resolve to empty strings, not errors.
func (r *StudentRepository) ListBySchool(ctx context.Context, schoolID string) ([]roster.Student, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("student repo: nil db")
	}
	if schoolID == "" {
		return nil, errors.New("student repo: empty school id")
	}

	query := fmt.Sprintf(`
SELECT s.id, s.school_id, s.first_name, s.last_name,
	COALESCE(s.class_id, ''), COALESCE(c.name, ''),
	COALESCE(s.guardian_id, ''), COALESCE(g.full_name, ''),
	s.enrollment_date, s.is_active, s.status,
	s.created_at, s.updated_at
FROM %s s
LEFT JOIN classes c ON c.id = s.class_id
LEFT JOIN guardians g ON g.id = s.guardian_id
WHERE s.school_id = $1
ORDER BY s.last_name ASC, s.first_name ASC`, r.table)

	rows, err := r.db.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []roster.Student
	for rows.Next() {
		var student roster.Student
		var enrollment sql.NullTime
		if err := rows.Scan(
			&student.ID,
			&student.SchoolID,
			&student.FirstName,
			&student.LastName,
			&student.ClassID,
			&student.ClassName,
			&student.GuardianID,
			&student.GuardianName,
			&enrollment,
			&student.Active,
			&student.Status,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if enrollment.Valid {
			utc := enrollment.Time.UTC()
			student.EnrollmentDate = &utc
		}
		student.CreatedAt = student.CreatedAt.UTC()
		student.UpdatedAt = student.UpdatedAt.UTC()
		// Rows without identity cannot be aggregated; skip them.
		if err := student.Validate(); err != nil {
			continue
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}
