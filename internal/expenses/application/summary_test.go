package application

import (
	"testing"

	expenses "campus-cloud/internal/expenses/domain"
)

func TestBuildSummary(t *testing.T) {
	rows := []expenses.Expense{
		{Amount: -120.50, Ledger: expenses.LedgerPettyCash},
		{Amount: 80, Ledger: expenses.LedgerPettyCash, ReceiptURL: "https://x/r1.pdf"},
		{Amount: -300, Ledger: expenses.LedgerTransactions},
		{Amount: 19.50, Ledger: expenses.LedgerTransactions, ReceiptURL: "https://x/r2.pdf"},
	}

	summary := BuildSummary(rows)
	if summary.TotalAmount != 520 {
		t.Fatalf("total = %v, want 520", summary.TotalAmount)
	}
	if summary.Count != 4 {
		t.Fatalf("count = %d", summary.Count)
	}
	if summary.PettyCashAmount != 200.50 {
		t.Fatalf("petty cash = %v", summary.PettyCashAmount)
	}
	if summary.TransactionsAmount != 319.50 {
		t.Fatalf("transactions = %v", summary.TransactionsAmount)
	}
	if summary.MissingReceiptPettyCash != 1 || summary.MissingReceiptTransactions != 1 || summary.MissingReceiptTotal != 2 {
		t.Fatalf("missing receipts = %+v", summary)
	}
}
