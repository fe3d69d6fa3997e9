package application

import (
	"time"

	fees "campus-cloud/internal/fees/domain"
	"campus-cloud/internal/period"
)

// SchoolFeeTotals is the school-fee portion of the financial summary.
type SchoolFeeTotals struct {
	Collected   float64
	Outstanding float64
}

// SchoolFeeSource yields school-fee totals and whether they came from the
// authoritative remote snapshot. Two implementations exist: the snapshot
// figures and the local aggregate; availability picks between them.
type SchoolFeeSource interface {
	SchoolFeeTotals() (SchoolFeeTotals, bool)
}

type snapshotFeeSource struct {
	snapshot fees.MonthlySnapshot
}

func (s snapshotFeeSource) SchoolFeeTotals() (SchoolFeeTotals, bool) {
	return SchoolFeeTotals{
		Collected:   s.snapshot.CollectedThisMonth,
		Outstanding: s.snapshot.StillOutstanding,
	}, true
}

type localFeeSource struct {
	summaries []StudentSummary
}

func (s localFeeSource) SchoolFeeTotals() (SchoolFeeTotals, bool) {
	var totals SchoolFeeTotals
	for _, summary := range s.summaries {
		totals.Collected += summary.Paid
		totals.Outstanding += summary.Outstanding
	}
	return totals, false
}

// SelectSchoolFeeSource picks the snapshot source only for current-month
// reports when the snapshot arrived; everything else aggregates locally.
func SelectSchoolFeeSource(snapshot *fees.MonthlySnapshot, window period.Window, summaries []StudentSummary) SchoolFeeSource {
	if snapshot != nil && window == period.WindowMonth {
		return snapshotFeeSource{snapshot: *snapshot}
	}
	return localFeeSource{summaries: summaries}
}

// FinancialSummary combines school-fee and registration-fee money.
// SnapshotUsed tells callers whether the school-fee figures are the
// authoritative remote ones or a local best effort.
type FinancialSummary struct {
	SchoolFeesCollected   float64
	SchoolFeesOutstanding float64
	SchoolFeesWaived      float64
	RegistrationCollected float64
	RegistrationPending   float64
	TotalCollected        float64
	TotalOutstanding      float64
	SnapshotUsed          bool
}

// BuildFinancialSummary assembles the financial summary for a window.
// Registration rows honor the same month filter by creation date. Waived
// totals are always local; the snapshot does not carry them.
func BuildFinancialSummary(
	summaries []StudentSummary,
	registrations []fees.Registration,
	snapshot *fees.MonthlySnapshot,
	window period.Window,
	now time.Time,
) FinancialSummary {
	source := SelectSchoolFeeSource(snapshot, window, summaries)
	totals, authoritative := source.SchoolFeeTotals()

	var summary FinancialSummary
	summary.SchoolFeesCollected = totals.Collected
	summary.SchoolFeesOutstanding = totals.Outstanding
	summary.SnapshotUsed = authoritative
	for _, s := range summaries {
		summary.SchoolFeesWaived += s.Waived
	}

	monthRange := period.RangeFor(window, now)
	for _, reg := range registrations {
		if monthRange != nil && !monthRange.Contains(reg.CreatedAt) {
			continue
		}
		switch {
		case reg.Collected():
			summary.RegistrationCollected += reg.Amount
		case reg.PendingCollection():
			summary.RegistrationPending += reg.Amount
		}
	}

	summary.TotalCollected = summary.SchoolFeesCollected + summary.RegistrationCollected
	summary.TotalOutstanding = summary.SchoolFeesOutstanding + summary.RegistrationPending
	return summary
}
