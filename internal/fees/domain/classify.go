package fees

import (
	"time"

	"campus-cloud/internal/period"
)

// PreEnrollment reports whether a fee predates the student's enrollment
// month and must be excluded from all aggregation. A fee with no due date
// is never excluded, and an unknown enrollment month excludes nothing.
func PreEnrollment(fee Fee, enrollment *time.Time) bool {
	if enrollment == nil || enrollment.IsZero() {
		return false
	}
	if fee.DueDate == nil || fee.DueDate.IsZero() {
		return false
	}
	return fee.DueDate.Before(period.MonthOf(*enrollment))
}

// AdvancePayment reports whether the fee was paid ahead of the calendar
// month its due date falls in. Both dates must be valid and the resolved
// paid amount must be positive.
func AdvancePayment(fee Fee) bool {
	if fee.PaidDate == nil || fee.PaidDate.IsZero() {
		return false
	}
	if fee.DueDate == nil || fee.DueDate.IsZero() {
		return false
	}
	if !fee.PaidDate.Before(period.MonthOf(*fee.DueDate)) {
		return false
	}
	return fee.PaidAmount() > 0
}

// Overdue reports whether an unpaid fee should count as overdue at the
// given instant: unpaid, not awaiting verification, and past a known due
// date. Every other unpaid fee counts as pending, so the two buckets are
// disjoint and together cover the unpaid set.
func Overdue(fee Fee, now time.Time) bool {
	if !fee.Status.IsUnpaid() {
		return false
	}
	if fee.Status == StatusPendingVerification {
		return false
	}
	if fee.DueDate == nil || fee.DueDate.IsZero() {
		return false
	}
	return fee.DueDate.Before(now)
}
