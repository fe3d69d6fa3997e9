package fees

// Status is the payment state of a fee record. Upstream data is an open
// string enum; anything outside the documented values normalizes to
// StatusUnknown.
type Status string

const (
	StatusPaid                Status = "paid"
	StatusPending             Status = "pending"
	StatusOverdue             Status = "overdue"
	StatusPartiallyPaid       Status = "partially_paid"
	StatusPendingVerification Status = "pending_verification"
	StatusWaived              Status = "waived"
	StatusUnknown             Status = "unknown"
)

// NormalizeStatus maps a raw status string to a Status.
func NormalizeStatus(value string) Status {
	switch Status(value) {
	case StatusPaid, StatusPending, StatusOverdue, StatusPartiallyPaid, StatusPendingVerification, StatusWaived:
		return Status(value)
	default:
		return StatusUnknown
	}
}

// IsUnpaid reports whether the status belongs to the unpaid set. Unknown
// statuses are not considered unpaid, so they never inflate outstanding
// totals.
func (s Status) IsUnpaid() bool {
	switch s {
	case StatusPending, StatusOverdue, StatusPartiallyPaid, StatusPendingVerification:
		return true
	default:
		return false
	}
}
