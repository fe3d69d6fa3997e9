package application

import (
	"time"

	expapp "campus-cloud/internal/expenses/application"
	feeapp "campus-cloud/internal/fees/application"
	fees "campus-cloud/internal/fees/domain"
	payapp "campus-cloud/internal/payments/application"
	"campus-cloud/internal/period"
	uniforms "campus-cloud/internal/uniforms/domain"
)

// Accounting is the top-level money picture a principal sees first. It
// is the primary input to the insight engine.
type Accounting struct {
	Income         float64
	Pending        float64
	Expenses       float64
	Due            float64
	CompletionRate float64
	Net            float64
	SnapshotUsed   bool
}

// Report is the assembled financial report for one school and window.
// It is recomputed on every request and never persisted.
type Report struct {
	SchoolID    string
	Window      period.Window
	GeneratedAt time.Time

	Students   []feeapp.StudentSummary
	Financial  feeapp.FinancialSummary
	Payments   payapp.Summary
	POPs       payapp.POPSummary
	Expenses   expapp.Summary
	Breakdown  []feeapp.BreakdownRow
	Advance    *feeapp.AdvanceSummary
	Accounting Accounting

	// Uniforms is nil when the uniform sub-computation failed; that
	// failure never fails the report.
	Uniforms *uniforms.Summary
}

// BuildAccounting derives the accounting snapshot. The monthly snapshot
// figures win for the month window; otherwise payment totals stand in.
func BuildAccounting(
	snapshot *fees.MonthlySnapshot,
	window period.Window,
	paymentSummary payapp.Summary,
	expenseSummary expapp.Summary,
) Accounting {
	acct := Accounting{Expenses: expenseSummary.TotalAmount}

	if snapshot != nil && window == period.WindowMonth {
		acct.Income = snapshot.CollectedThisMonth
		acct.Pending = snapshot.StillOutstanding
		acct.Due = snapshot.DueThisMonth
		acct.SnapshotUsed = true
	} else {
		acct.Income = paymentSummary.CompletedAmount
		acct.Pending = paymentSummary.PendingAmount
	}
	if acct.Due == 0 {
		acct.Due = acct.Income + acct.Pending
	}

	if acct.Due > 0 {
		acct.CompletionRate = acct.Income / acct.Due * 100
		if acct.CompletionRate > 100 {
			acct.CompletionRate = 100
		}
		if acct.CompletionRate < 0 {
			acct.CompletionRate = 0
		}
	}
	acct.Net = acct.Income - acct.Expenses
	return acct
}
