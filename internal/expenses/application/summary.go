package application

import (
	expenses "campus-cloud/internal/expenses/domain"
)

// Summary totals spend across both expense ledgers. Amounts are
// sign-normalized; missing receipts are tracked per ledger and combined.
type Summary struct {
	TotalAmount                float64
	Count                      int
	PettyCashAmount            float64
	TransactionsAmount         float64
	MissingReceiptPettyCash    int
	MissingReceiptTransactions int
	MissingReceiptTotal        int
}

// BuildSummary folds expense rows from any mix of ledgers.
func BuildSummary(rows []expenses.Expense) Summary {
	var summary Summary
	for _, expense := range rows {
		amount := expense.AbsoluteAmount()
		summary.TotalAmount += amount
		summary.Count++

		switch expense.Ledger {
		case expenses.LedgerPettyCash:
			summary.PettyCashAmount += amount
			if expense.MissingReceipt() {
				summary.MissingReceiptPettyCash++
			}
		default:
			summary.TransactionsAmount += amount
			if expense.MissingReceipt() {
				summary.MissingReceiptTransactions++
			}
		}
	}
	summary.MissingReceiptTotal = summary.MissingReceiptPettyCash + summary.MissingReceiptTransactions
	return summary
}
