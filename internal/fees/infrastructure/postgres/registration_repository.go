package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	fees "campus-cloud/internal/fees/domain"
	"campus-cloud/internal/period"
)

const (
	defaultRegistrationsTable = "registration_fees"
	defaultApplicationsTable  = "admission_applications"
)

// RegistrationRepository loads registration money from its two sources.
type RegistrationRepository struct {
	db                 *sql.DB
	registrationsTable string
	applicationsTable  string
}

// NewRegistrationRepository constructs a repository.
func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db:                 db,
		registrationsTable: defaultRegistrationsTable,
		applicationsTable:  defaultApplicationsTable,
	}
}

// ListRegistrations returns rows from the registration-fee table.
func (r *RegistrationRepository) ListRegistrations(ctx context.Context, schoolID string, window *period.Range) ([]fees.Registration, error) {
	return r.list(ctx, schoolID, window, r.registrationsTable, fees.RegistrationSourceRegistrations)
}

// ListApplications returns rows from the admission-application table,
// which carries registration money under a different shape.
func (r *RegistrationRepository) ListApplications(ctx context.Context, schoolID string, window *period.Range) ([]fees.Registration, error) {
	return r.list(ctx, schoolID, window, r.applicationsTable, fees.RegistrationSourceApplications)
}

func (r *RegistrationRepository) list(ctx context.Context, schoolID string, window *period.Range, table, source string) ([]fees.Registration, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("registration repo: nil db")
	}
	if schoolID == "" {
		return nil, fees.ErrEmptySchoolID
	}

	query := fmt.Sprintf(`
SELECT id, school_id, COALESCE(amount, 0), COALESCE(is_verified, FALSE), COALESCE(status, ''), created_at
FROM %s
WHERE school_id = $1`, table)
	args := []any{schoolID}
	query, args = period.ApplyFilter(query, args, "created_at", window)
	query += "\nORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []fees.Registration
	for rows.Next() {
		var reg fees.Registration
		if err := rows.Scan(&reg.ID, &reg.SchoolID, &reg.Amount, &reg.Verified, &reg.Status, &reg.CreatedAt); err != nil {
			return nil, err
		}
		reg.Source = source
		reg.CreatedAt = reg.CreatedAt.UTC()
		result = append(result, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
