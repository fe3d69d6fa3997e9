package application

import (
	"sort"
	"time"

	fees "campus-cloud/internal/fees/domain"
	"campus-cloud/internal/period"
	roster "campus-cloud/internal/roster/domain"
)

// BreakdownRow is one fee-structure group in the fee-type breakdown.
type BreakdownRow struct {
	Key              string
	Label            string
	Category         string
	TotalDue         float64
	TotalPaid        float64
	TotalOutstanding float64
	Count            int
	PrepaidAmount    float64
	PrepaidCount     int
}

// AdvanceSummary totals advance payments across all breakdown groups.
type AdvanceSummary struct {
	Count  int
	Amount float64
}

// BuildBreakdown groups the window-scoped fees of all participating
// students by fee structure. Rows are sorted by total due, descending.
// The advance summary is nil when nothing was prepaid or the window is
// all-time; advance detection only runs for the month window.
func BuildBreakdown(students []roster.Student, allFees []fees.Fee, window period.Window, now time.Time) ([]BreakdownRow, *AdvanceSummary) {
	groups := make(map[string]*BreakdownRow)
	var order []string
	var advance AdvanceSummary

	for _, student := range students {
		if !student.Participates() {
			continue
		}
		for _, fee := range ScopedFees(student, allFees, window, now) {
			key := fee.BreakdownKey()
			row, ok := groups[key]
			if !ok {
				row = &BreakdownRow{Key: key, Label: fee.Label, Category: fee.Category}
				groups[key] = row
				order = append(order, key)
			}
			row.TotalDue += fee.ChargedAmount()
			row.TotalPaid += fee.PaidAmount()
			row.TotalOutstanding += fee.OutstandingAmount()
			row.Count++

			if window == period.WindowMonth && fees.AdvancePayment(fee) {
				paid := fee.PaidAmount()
				row.PrepaidAmount += paid
				row.PrepaidCount++
				advance.Amount += paid
				advance.Count++
			}
		}
	}

	rows := make([]BreakdownRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *groups[key])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalDue > rows[j].TotalDue
	})

	if window != period.WindowMonth || advance.Count == 0 {
		return rows, nil
	}
	return rows, &advance
}
