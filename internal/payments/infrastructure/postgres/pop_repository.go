package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	payments "campus-cloud/internal/payments/domain"
	"campus-cloud/internal/period"
)

const defaultPOPsTable = "proof_of_payments"

// POPRepository loads proof-of-payment uploads.
type POPRepository struct {
	db    *sql.DB
	table string
}

// NewPOPRepository constructs a repository.
func NewPOPRepository(db *sql.DB) *POPRepository {
	return &POPRepository{db: db, table: defaultPOPsTable}
}

// ListBySchool returns uploads for a school, optionally limited to a
// window by creation date.
func (r *POPRepository) ListBySchool(ctx context.Context, schoolID string, window *period.Range) ([]payments.ProofOfPayment, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("pop repo: nil db")
	}
	if schoolID == "" {
		return nil, errors.New("pop repo: empty school id")
	}

	query := fmt.Sprintf(`
SELECT id, school_id, COALESCE(student_id, ''), COALESCE(declared_amount, 0), COALESCE(status, ''),
	COALESCE(payment_reference, ''), COALESCE(description, ''), created_at
FROM %s
WHERE school_id = $1`, r.table)
	args := []any{schoolID}
	query, args = period.ApplyFilter(query, args, "created_at", window)
	query += "\nORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []payments.ProofOfPayment
	for rows.Next() {
		var pop payments.ProofOfPayment
		if err := rows.Scan(
			&pop.ID,
			&pop.SchoolID,
			&pop.StudentID,
			&pop.Amount,
			&pop.Status,
			&pop.PaymentReference,
			&pop.Description,
			&pop.CreatedAt,
		); err != nil {
			return nil, err
		}
		pop.CreatedAt = pop.CreatedAt.UTC()
		result = append(result, pop)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
