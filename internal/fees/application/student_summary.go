package application

import (
	"time"

	fees "campus-cloud/internal/fees/domain"
	"campus-cloud/internal/period"
	roster "campus-cloud/internal/roster/domain"
)

// StudentSummary is the per-student financial position over the scoped
// fee set.
type StudentSummary struct {
	StudentID    string
	StudentName  string
	ClassName    string
	GuardianID   string
	FeeCount     int
	Outstanding  float64
	Paid         float64
	Waived       float64
	OverdueCount int
	PendingCount int
}

// ScopedFees returns the student's fees that participate in aggregation:
// pre-enrollment entries are dropped, and for the month window only fees
// whose relevant date falls inside the current month remain.
func ScopedFees(student roster.Student, all []fees.Fee, window period.Window, now time.Time) []fees.Fee {
	var monthRange *period.Range
	if window == period.WindowMonth {
		r := period.CurrentMonth(now)
		monthRange = &r
	}

	scoped := make([]fees.Fee, 0, len(all))
	for _, fee := range all {
		if fee.StudentID != student.ID {
			continue
		}
		if fees.PreEnrollment(fee, student.EnrollmentDate) {
			continue
		}
		if monthRange != nil && !monthRange.Contains(fee.RelevantDate()) {
			continue
		}
		scoped = append(scoped, fee)
	}
	return scoped
}

// BuildStudentSummaries folds each participating student's scoped fee set
// into a summary. Inactive students are skipped entirely.
func BuildStudentSummaries(students []roster.Student, allFees []fees.Fee, window period.Window, now time.Time) []StudentSummary {
	summaries := make([]StudentSummary, 0, len(students))
	for _, student := range students {
		if !student.Participates() {
			continue
		}
		scoped := ScopedFees(student, allFees, window, now)

		summary := StudentSummary{
			StudentID:   student.ID,
			StudentName: student.FullName(),
			ClassName:   student.ClassName,
			GuardianID:  student.GuardianID,
			FeeCount:    len(scoped),
		}
		for _, fee := range scoped {
			summary.Paid += fee.PaidAmount()
			summary.Waived += fee.WaivedAmount()
			if fee.Status.IsUnpaid() {
				summary.Outstanding += fee.OutstandingAmount()
				if fees.Overdue(fee, now) {
					summary.OverdueCount++
				} else {
					summary.PendingCount++
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
