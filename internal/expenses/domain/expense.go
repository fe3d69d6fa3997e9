package expenses

import (
	"math"
	"time"
)

// Ledger identifies which book an expense row came from. Schools record
// spend in two places that never quite agree, so rows keep their origin.
const (
	LedgerPettyCash    = "petty_cash"
	LedgerTransactions = "transactions"
)

// Expense is a single outgoing transaction from either ledger.
type Expense struct {
	ID         string
	SchoolID   string
	Amount     float64
	ReceiptURL string
	Type       string
	Ledger     string
	CreatedAt  time.Time
}

// AbsoluteAmount sign-normalizes the amount. Some upstream rows store
// spend as negatives.
func (e Expense) AbsoluteAmount() float64 {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return 0
	}
	return math.Abs(e.Amount)
}

// MissingReceipt reports whether the row lacks a receipt reference.
func (e Expense) MissingReceipt() bool {
	return e.ReceiptURL == ""
}
