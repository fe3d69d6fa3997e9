package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	schools "campus-cloud/internal/schools/domain"
)

const defaultSchoolsTable = "schools"

// SchoolRepository is a Postgres implementation for the school directory.
type SchoolRepository struct {
	db    *sql.DB
	table string
}

// NewSchoolRepository constructs a repository.
func NewSchoolRepository(db *sql.DB, opts ...SchoolOption) *SchoolRepository {
	repo := &SchoolRepository{db: db, table: defaultSchoolsTable}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// SchoolOption configures the repository.
type SchoolOption func(*SchoolRepository)

// WithSchoolsTable overrides the default table name.
func WithSchoolsTable(table string) SchoolOption {
	return func(repo *SchoolRepository) {
		if table != "" {
			repo.table = table
		}
	}
}

// Get loads a school by id.
func (r *SchoolRepository) Get(ctx context.Context, id string) (*schools.School, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("school repo: nil db")
	}
	if id == "" {
		return nil, errors.New("school repo: empty id")
	}

	query := fmt.Sprintf(`
SELECT id, name, timezone, currency, active, created_at, updated_at
FROM %s
WHERE id = $1
LIMIT 1`, r.table)

	var school schools.School
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&school.ID,
		&school.Name,
		&school.Timezone,
		&school.Currency,
		&school.Active,
		&school.CreatedAt,
		&school.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	school.CreatedAt = school.CreatedAt.UTC()
	school.UpdatedAt = school.UpdatedAt.UTC()
	return &school, nil
}
