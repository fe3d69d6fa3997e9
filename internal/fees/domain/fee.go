package fees

import (
	"math"
	"time"
)

// Fee is one ledger entry against a student. Optional fields are pointers
// because upstream rows routinely omit or contradict them; the resolver
// methods below produce the canonical figures.
type Fee struct {
	ID        string
	StudentID string

	// StructureID and Label identify the fee structure the entry was
	// billed under. StructureID may be empty for ad-hoc fees.
	StructureID string
	Label       string
	Category    string

	Amount            float64
	FinalAmount       *float64
	AmountPaid        *float64
	AmountOutstanding *float64
	AmountWaived      *float64
	DiscountAmount    *float64

	Status    Status
	DueDate   *time.Time
	PaidDate  *time.Time
	CreatedAt time.Time
}

// ChargedAmount returns the canonical amount the fee charges: the final
// amount override when it is a positive finite number, else the nominal
// amount, else 0. Never negative.
func (f Fee) ChargedAmount() float64 {
	if v := deref(f.FinalAmount); v > 0 {
		return v
	}
	if finite(f.Amount) && f.Amount > 0 {
		return f.Amount
	}
	return 0
}

// PaidAmount returns the explicit paid figure when positive. A fee marked
// paid without one is treated as paid in full.
func (f Fee) PaidAmount() float64 {
	if v := deref(f.AmountPaid); v > 0 {
		return v
	}
	if f.Status == StatusPaid {
		return f.ChargedAmount()
	}
	return 0
}

// OutstandingAmount returns the explicit outstanding figure when
// positive; otherwise an unpaid-status fee owes its full charged amount.
func (f Fee) OutstandingAmount() float64 {
	if v := deref(f.AmountOutstanding); v > 0 {
		return v
	}
	if f.Status.IsUnpaid() {
		return f.ChargedAmount()
	}
	return 0
}

// WaivedAmount returns the explicit waived figure, falling back to the
// discount figure.
func (f Fee) WaivedAmount() float64 {
	if v := deref(f.AmountWaived); v > 0 {
		return v
	}
	if v := deref(f.DiscountAmount); v > 0 {
		return v
	}
	return 0
}

// RelevantDate is the date used to scope a fee into a reporting window:
// due date, else created date, else paid date.
func (f Fee) RelevantDate() time.Time {
	if f.DueDate != nil && !f.DueDate.IsZero() {
		return *f.DueDate
	}
	if !f.CreatedAt.IsZero() {
		return f.CreatedAt
	}
	if f.PaidDate != nil {
		return *f.PaidDate
	}
	return time.Time{}
}

// BreakdownKey groups fees by structure, falling back to the display
// label for ad-hoc entries.
func (f Fee) BreakdownKey() string {
	if f.StructureID != "" {
		return f.StructureID
	}
	return f.Label
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	if !finite(*p) {
		return 0
	}
	return *p
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
