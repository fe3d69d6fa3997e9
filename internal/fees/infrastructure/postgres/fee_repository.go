package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	fees "campus-cloud/internal/fees/domain"
)

const defaultFeesTable = "student_fees"

// FeeRepository loads fee ledger entries.
type FeeRepository struct {
	db    *sql.DB
	table string
}

// FeeOption configures the repository.
type FeeOption func(*FeeRepository)

// WithFeesTable overrides the default table name.
func WithFeesTable(table string) FeeOption {
	return func(repo *FeeRepository) {
		if table != "" {
			repo.table = table
		}
	}
}

// NewFeeRepository constructs a repository.
func NewFeeRepository(db *sql.DB, opts ...FeeOption) *FeeRepository {
	repo := &FeeRepository{db: db, table: defaultFeesTable}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// ListBySchool returns every fee of the school's students with the fee
// structure joined for label and category. Window scoping happens in the
// aggregators because the relevant date is per-fee, not per-column.
func (r *FeeRepository) ListBySchool(ctx context.Context, schoolID string) ([]fees.Fee, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("fee repo: nil db")
	}
	if schoolID == "" {
		return nil, fees.ErrEmptySchoolID
	}

	query := fmt.Sprintf(`
SELECT f.id, f.student_id,
	COALESCE(f.fee_structure_id, ''), COALESCE(fs.name, f.description, ''), COALESCE(fs.category, ''),
	COALESCE(f.amount, 0), f.final_amount, f.amount_paid, f.amount_outstanding,
	f.amount_waived, f.discount_amount,
	COALESCE(f.status, ''), f.due_date, f.paid_date, f.created_at
FROM %s f
JOIN students s ON s.id = f.student_id
LEFT JOIN fee_structures fs ON fs.id = f.fee_structure_id
WHERE s.school_id = $1
ORDER BY f.due_date ASC NULLS LAST, f.created_at ASC`, r.table)

	rows, err := r.db.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []fees.Fee
	for rows.Next() {
		var fee fees.Fee
		var status string
		var finalAmount, amountPaid, amountOutstanding, amountWaived, discount sql.NullFloat64
		var dueDate, paidDate sql.NullTime
		if err := rows.Scan(
			&fee.ID,
			&fee.StudentID,
			&fee.StructureID,
			&fee.Label,
			&fee.Category,
			&fee.Amount,
			&finalAmount,
			&amountPaid,
			&amountOutstanding,
			&amountWaived,
			&discount,
			&status,
			&dueDate,
			&paidDate,
			&fee.CreatedAt,
		); err != nil {
			return nil, err
		}
		fee.Status = fees.NormalizeStatus(status)
		fee.FinalAmount = nullFloat(finalAmount)
		fee.AmountPaid = nullFloat(amountPaid)
		fee.AmountOutstanding = nullFloat(amountOutstanding)
		fee.AmountWaived = nullFloat(amountWaived)
		fee.DiscountAmount = nullFloat(discount)
		fee.DueDate = nullTime(dueDate)
		fee.PaidDate = nullTime(paidDate)
		fee.CreatedAt = fee.CreatedAt.UTC()
		result = append(result, fee)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
