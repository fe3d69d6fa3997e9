package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	expenses "campus-cloud/internal/expenses/domain"
	"campus-cloud/internal/period"
)

const (
	defaultPettyCashTable    = "petty_cash_entries"
	defaultTransactionsTable = "financial_transactions"
)

// ExpenseRepository loads outgoing money from the two expense ledgers.
type ExpenseRepository struct {
	db                *sql.DB
	pettyCashTable    string
	transactionsTable string
}

// NewExpenseRepository constructs a repository.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{
		db:                db,
		pettyCashTable:    defaultPettyCashTable,
		transactionsTable: defaultTransactionsTable,
	}
}

// ListPettyCash returns petty-cash entries, optionally windowed by entry
// date.
func (r *ExpenseRepository) ListPettyCash(ctx context.Context, schoolID string, window *period.Range) ([]expenses.Expense, error) {
	query := `
SELECT id, school_id, COALESCE(amount, 0), COALESCE(receipt_url, ''), COALESCE(entry_type, ''), entry_date
FROM ` + r.pettyCashTable + `
WHERE school_id = $1`
	return r.list(ctx, schoolID, window, query, "entry_date", expenses.LedgerPettyCash)
}

// ListTransactions returns expense rows from the general transaction
// ledger, optionally windowed by transaction date. Only debit rows are
// expenses.
func (r *ExpenseRepository) ListTransactions(ctx context.Context, schoolID string, window *period.Range) ([]expenses.Expense, error) {
	query := `
SELECT id, school_id, COALESCE(amount, 0), COALESCE(receipt_url, ''), COALESCE(transaction_type, ''), transaction_date
FROM ` + r.transactionsTable + `
WHERE school_id = $1 AND direction = 'debit'`
	return r.list(ctx, schoolID, window, query, "transaction_date", expenses.LedgerTransactions)
}

func (r *ExpenseRepository) list(ctx context.Context, schoolID string, window *period.Range, query, dateColumn, ledger string) ([]expenses.Expense, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("expense repo: nil db")
	}
	if schoolID == "" {
		return nil, errors.New("expense repo: empty school id")
	}

	args := []any{schoolID}
	query, args = period.ApplyFilter(query, args, dateColumn, window)
	query += fmt.Sprintf("\nORDER BY %s ASC", dateColumn)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []expenses.Expense
	for rows.Next() {
		var expense expenses.Expense
		if err := rows.Scan(
			&expense.ID,
			&expense.SchoolID,
			&expense.Amount,
			&expense.ReceiptURL,
			&expense.Type,
			&expense.CreatedAt,
		); err != nil {
			return nil, err
		}
		expense.Ledger = ledger
		expense.CreatedAt = expense.CreatedAt.UTC()
		result = append(result, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
