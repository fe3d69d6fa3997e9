package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campus-cloud/internal/period"
	uniforms "campus-cloud/internal/uniforms/domain"
)

const defaultOrdersTable = "uniform_orders"

// OrderRepository loads uniform order submissions.
type OrderRepository struct {
	db    *sql.DB
	table string
}

// NewOrderRepository constructs a repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db, table: defaultOrdersTable}
}

// ListBySchool returns uniform orders, optionally windowed by creation
// date.
func (r *OrderRepository) ListBySchool(ctx context.Context, schoolID string, window *period.Range) ([]uniforms.Order, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("uniform order repo: nil db")
	}
	if schoolID == "" {
		return nil, errors.New("uniform order repo: empty school id")
	}

	query := fmt.Sprintf(`
SELECT id, school_id, COALESCE(student_id, ''), COALESCE(total_amount, 0), COALESCE(status, ''), created_at
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

	var result []uniforms.Order
	for rows.Next() {
		var order uniforms.Order
		if err := rows.Scan(
			&order.ID,
			&order.SchoolID,
			&order.StudentID,
			&order.Amount,
			&order.Status,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		order.CreatedAt = order.CreatedAt.UTC()
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
