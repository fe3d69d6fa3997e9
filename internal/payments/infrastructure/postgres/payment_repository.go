package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	payments "campus-cloud/internal/payments/domain"
	"campus-cloud/internal/period"
)

const defaultPaymentsTable = "payments"

// PaymentRepository loads payment records.
type PaymentRepository struct {
	db    *sql.DB
	table string
}

// NewPaymentRepository constructs a repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db, table: defaultPaymentsTable}
}

// ListBySchool returns payments for a school, optionally limited to a
// window by creation date.
func (r *PaymentRepository) ListBySchool(ctx context.Context, schoolID string, window *period.Range) ([]payments.Payment, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("payment repo: nil db")
	}
	if schoolID == "" {
		return nil, errors.New("payment repo: empty school id")
	}

	query := fmt.Sprintf(`
SELECT id, school_id, COALESCE(student_id, ''), COALESCE(amount, 0), COALESCE(status, ''),
	COALESCE(payment_reference, ''), COALESCE(attachment_url, ''),
	COALESCE(description, ''), COALESCE(metadata, '{}'), created_at
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

	var result []payments.Payment
	for rows.Next() {
		var payment payments.Payment
		var metadata []byte
		if err := rows.Scan(
			&payment.ID,
			&payment.SchoolID,
			&payment.StudentID,
			&payment.Amount,
			&payment.Status,
			&payment.Reference,
			&payment.AttachmentURL,
			&payment.Description,
			&metadata,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		// Metadata is a loose JSON bag; a malformed one classifies off
		// the description instead of failing the fetch.
		if len(metadata) > 0 {
			_ = json.Unmarshal(metadata, &payment.Metadata)
		}
		payment.CreatedAt = payment.CreatedAt.UTC()
		result = append(result, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
