package fees

import (
	"testing"
	"time"
)

func TestPreEnrollment(t *testing.T) {
	enrolled := time.Date(2025, 2, 18, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		fee        Fee
		enrollment *time.Time
		want       bool
	}{
		{
			"due before enrollment month",
			Fee{DueDate: tptr(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))},
			tptr(enrolled),
			true,
		},
		{
			"due inside enrollment month",
			Fee{DueDate: tptr(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))},
			tptr(enrolled),
			false,
		},
		{
			"due after enrollment",
			Fee{DueDate: tptr(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))},
			tptr(enrolled),
			false,
		},
		{"no due date", Fee{}, tptr(enrolled), false},
		{
			"no enrollment date",
			Fee{DueDate: tptr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))},
			nil,
			false,
		},
	}
	for _, tc := range cases {
		if got := PreEnrollment(tc.fee, tc.enrollment); got != tc.want {
			t.Errorf("%s: PreEnrollment = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAdvancePayment(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		fee  Fee
		want bool
	}{
		{
			"paid in prior month",
			Fee{DueDate: tptr(due), PaidDate: tptr(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)), AmountPaid: fptr(300)},
			true,
		},
		{
			"paid inside due month",
			Fee{DueDate: tptr(due), PaidDate: tptr(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), AmountPaid: fptr(300)},
			false,
		},
		{
			"paid early but nothing resolved",
			Fee{DueDate: tptr(due), PaidDate: tptr(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC))},
			false,
		},
		{"no paid date", Fee{DueDate: tptr(due), AmountPaid: fptr(300)}, false},
		{"no due date", Fee{PaidDate: tptr(due), AmountPaid: fptr(300)}, false},
	}
	for _, tc := range cases {
		if got := AdvancePayment(tc.fee); got != tc.want {
			t.Errorf("%s: AdvancePayment = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOverdueAndPendingAreDisjoint(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	past := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	fees := []Fee{
		{Amount: 100, Status: StatusOverdue, DueDate: tptr(past)},
		{Amount: 100, Status: StatusPending, DueDate: tptr(past)},
		{Amount: 100, Status: StatusPending, DueDate: tptr(future)},
		{Amount: 100, Status: StatusPending},
		{Amount: 100, Status: StatusPendingVerification, DueDate: tptr(past)},
		{Amount: 100, Status: StatusPartiallyPaid, DueDate: tptr(past)},
		{Amount: 100, Status: StatusPaid, DueDate: tptr(past)},
		{Amount: 100, Status: StatusWaived},
	}

	var overdue, pending int
	for _, fee := range fees {
		isOverdue := Overdue(fee, now)
		isPending := fee.Status.IsUnpaid() && !isOverdue
		if isOverdue && isPending {
			t.Fatalf("fee %+v counted in both buckets", fee)
		}
		if fee.Status.IsUnpaid() && !isOverdue && !isPending {
			t.Fatalf("unpaid fee %+v counted in neither bucket", fee)
		}
		if isOverdue {
			overdue++
		}
		if isPending {
			pending++
		}
	}
	if overdue != 2 {
		t.Fatalf("overdue = %d, want 2", overdue)
	}
	if pending != 4 {
		t.Fatalf("pending = %d, want 4", pending)
	}
}
