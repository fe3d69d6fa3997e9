package application

import (
	"fmt"

	expapp "campus-cloud/internal/expenses/application"
	payapp "campus-cloud/internal/payments/application"
	reporting "campus-cloud/internal/reporting/application"
)

// Insights holds short actionable recommendations split into things to
// do and things to avoid. Neither list is ever empty.
type Insights struct {
	Do    []string
	Avoid []string
}

// Engine evaluates a fixed rule list over the accounting snapshot and
// the payment/expense summaries. Rules run in declaration order so the
// output is deterministic for a given input.
type Engine struct {
	thresholds Thresholds
}

// NewEngine constructs an engine with the given config.
func NewEngine(cfg Config) *Engine {
	return &Engine{thresholds: cfg.Thresholds}
}

// Generate runs every rule and falls back to a default entry for any
// list no rule touched.
func (e *Engine) Generate(
	acct reporting.Accounting,
	paymentSummary payapp.Summary,
	expenseSummary expapp.Summary,
) Insights {
	var insights Insights

	if acct.Pending > 0 {
		insights.Do = append(insights.Do,
			fmt.Sprintf("Follow up on %.2f in pending fees with payment reminders to guardians.", acct.Pending))
	}
	if acct.CompletionRate < e.thresholds.CompletionRateFloor && acct.Pending > 0 {
		insights.Do = append(insights.Do,
			"Offer structured payment plans to families with outstanding balances to lift the collection rate.")
	}
	if paymentSummary.MissingEvidenceCount > 0 {
		insights.Do = append(insights.Do,
			fmt.Sprintf("Collect references or proof for %d payment(s) recorded without evidence.", paymentSummary.MissingEvidenceCount))
		insights.Avoid = append(insights.Avoid,
			"Avoid marking payments as received before a reference or proof of payment is on file.")
	}
	if expenseSummary.MissingReceiptTotal > 0 {
		insights.Do = append(insights.Do,
			fmt.Sprintf("File receipts for %d expense(s) currently missing one.", expenseSummary.MissingReceiptTotal))
	}
	if acct.Income > 0 && acct.Expenses/acct.Income > e.thresholds.ExpenseRatioCeiling {
		insights.Avoid = append(insights.Avoid,
			"Avoid new discretionary spending; expenses are consuming most of this period's income.")
	}
	if acct.Pending == 0 && acct.Net > 0 {
		insights.Do = append(insights.Do,
			"Collections are up to date; move surplus into the school's cash reserve.")
	}

	if len(insights.Do) == 0 {
		insights.Do = append(insights.Do, "Finances look healthy; keep the current collection routine.")
	}
	if len(insights.Avoid) == 0 {
		insights.Avoid = append(insights.Avoid, "No spending risks detected this period.")
	}
	return insights
}
