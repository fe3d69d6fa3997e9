package fees

import (
	"math"
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

func TestChargedAmount(t *testing.T) {
	cases := []struct {
		name string
		fee  Fee
		want float64
	}{
		{"final amount wins", Fee{Amount: 400, FinalAmount: fptr(500)}, 500},
		{"nominal when no override", Fee{Amount: 400}, 400},
		{"zero override ignored", Fee{Amount: 400, FinalAmount: fptr(0)}, 400},
		{"negative override ignored", Fee{Amount: 400, FinalAmount: fptr(-50)}, 400},
		{"nan override ignored", Fee{Amount: 400, FinalAmount: fptr(math.NaN())}, 400},
		{"inf nominal coerces to zero", Fee{Amount: math.Inf(1)}, 0},
		{"negative nominal coerces to zero", Fee{Amount: -10}, 0},
		{"empty fee", Fee{}, 0},
	}
	for _, tc := range cases {
		if got := tc.fee.ChargedAmount(); got != tc.want {
			t.Errorf("%s: ChargedAmount = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPaidAmount(t *testing.T) {
	cases := []struct {
		name string
		fee  Fee
		want float64
	}{
		{"explicit paid wins", Fee{Amount: 400, AmountPaid: fptr(150), Status: StatusPending}, 150},
		{"paid status falls back to charged", Fee{Amount: 400, Status: StatusPaid}, 400},
		{"paid status uses final amount", Fee{Amount: 400, FinalAmount: fptr(500), Status: StatusPaid}, 500},
		{"pending with zero paid", Fee{FinalAmount: fptr(500), Amount: 400, Status: StatusPending, AmountPaid: fptr(0)}, 0},
		{"unknown status", Fee{Amount: 400, Status: StatusUnknown}, 0},
	}
	for _, tc := range cases {
		if got := tc.fee.PaidAmount(); got != tc.want {
			t.Errorf("%s: PaidAmount = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOutstandingAmount(t *testing.T) {
	cases := []struct {
		name string
		fee  Fee
		want float64
	}{
		{"explicit outstanding wins", Fee{Amount: 400, AmountOutstanding: fptr(150), Status: StatusOverdue}, 150},
		{"pending owes charged amount", Fee{FinalAmount: fptr(500), Amount: 400, Status: StatusPending}, 500},
		{"overdue owes charged amount", Fee{Amount: 400, Status: StatusOverdue}, 400},
		{"partially paid owes charged amount", Fee{Amount: 400, Status: StatusPartiallyPaid}, 400},
		{"pending verification owes charged amount", Fee{Amount: 400, Status: StatusPendingVerification}, 400},
		{"paid owes nothing", Fee{Amount: 400, Status: StatusPaid}, 0},
		{"unknown status owes nothing", Fee{Amount: 400, Status: StatusUnknown}, 0},
	}
	for _, tc := range cases {
		if got := tc.fee.OutstandingAmount(); got != tc.want {
			t.Errorf("%s: OutstandingAmount = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// Outstanding money implies an unpaid status, for every status value.
func TestOutstandingImpliesUnpaid(t *testing.T) {
	statuses := []Status{
		StatusPaid, StatusPending, StatusOverdue, StatusPartiallyPaid,
		StatusPendingVerification, StatusWaived, StatusUnknown,
	}
	for _, status := range statuses {
		fee := Fee{Amount: 100, Status: status}
		if fee.OutstandingAmount() > 0 && !status.IsUnpaid() {
			t.Errorf("status %q: outstanding %v without unpaid status", status, fee.OutstandingAmount())
		}
	}
}

func TestWaivedAmount(t *testing.T) {
	if got := (Fee{AmountWaived: fptr(80), DiscountAmount: fptr(20)}).WaivedAmount(); got != 80 {
		t.Fatalf("waived = %v, want 80", got)
	}
	if got := (Fee{DiscountAmount: fptr(20)}).WaivedAmount(); got != 20 {
		t.Fatalf("discount fallback = %v, want 20", got)
	}
	if got := (Fee{}).WaivedAmount(); got != 0 {
		t.Fatalf("empty = %v, want 0", got)
	}
}

func TestRelevantDate(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)

	if got := (Fee{DueDate: tptr(due), CreatedAt: created}).RelevantDate(); !got.Equal(due) {
		t.Fatalf("due wins: %v", got)
	}
	if got := (Fee{CreatedAt: created, PaidDate: tptr(paid)}).RelevantDate(); !got.Equal(created) {
		t.Fatalf("created second: %v", got)
	}
	if got := (Fee{PaidDate: tptr(paid)}).RelevantDate(); !got.Equal(paid) {
		t.Fatalf("paid last: %v", got)
	}
}

func TestNormalizeStatus(t *testing.T) {
	if got := NormalizeStatus("overdue"); got != StatusOverdue {
		t.Fatalf("overdue = %q", got)
	}
	if got := NormalizeStatus("awaiting_magic"); got != StatusUnknown {
		t.Fatalf("unknown = %q", got)
	}
}
