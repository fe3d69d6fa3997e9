package application

import (
	"testing"
	"time"

	fees "campus-cloud/internal/fees/domain"
	"campus-cloud/internal/period"
)

func TestBuildFinancialSummarySnapshotAuthoritative(t *testing.T) {
	summaries := []StudentSummary{
		{StudentID: "s1", Paid: 100, Outstanding: 900, Waived: 25},
	}
	snapshot := &fees.MonthlySnapshot{
		CollectedThisMonth: 4000,
		StillOutstanding:   1500,
		DueThisMonth:       5500,
	}

	summary := BuildFinancialSummary(summaries, nil, snapshot, period.WindowMonth, now)
	if !summary.SnapshotUsed {
		t.Fatal("snapshot should be used for the month window")
	}
	if summary.SchoolFeesCollected != 4000 || summary.SchoolFeesOutstanding != 1500 {
		t.Fatalf("snapshot figures not preferred: %+v", summary)
	}
	// Waived stays local; the snapshot has no such figure.
	if summary.SchoolFeesWaived != 25 {
		t.Fatalf("waived = %v, want 25", summary.SchoolFeesWaived)
	}
}

func TestBuildFinancialSummarySnapshotIgnoredForAllTime(t *testing.T) {
	summaries := []StudentSummary{{Paid: 100, Outstanding: 900}}
	snapshot := &fees.MonthlySnapshot{CollectedThisMonth: 4000, StillOutstanding: 1500}

	summary := BuildFinancialSummary(summaries, nil, snapshot, period.WindowAll, now)
	if summary.SnapshotUsed {
		t.Fatal("all-time reports never use the monthly snapshot")
	}
	if summary.SchoolFeesCollected != 100 || summary.SchoolFeesOutstanding != 900 {
		t.Fatalf("local figures expected: %+v", summary)
	}
}

func TestBuildFinancialSummaryRegistrations(t *testing.T) {
	inMonth := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC)

	registrations := []fees.Registration{
		{Amount: 100, Verified: true, Status: "approved", Source: fees.RegistrationSourceRegistrations, CreatedAt: inMonth},
		{Amount: 80, Verified: false, Status: "submitted", Source: fees.RegistrationSourceApplications, CreatedAt: inMonth},
		{Amount: 60, Verified: false, Status: "rejected", CreatedAt: inMonth},
		// Outside the month window.
		{Amount: 999, Verified: true, Status: "approved", CreatedAt: lastMonth},
		// Verified but not approved: neither collected nor pending.
		{Amount: 40, Verified: true, Status: "submitted", CreatedAt: inMonth},
	}

	summary := BuildFinancialSummary(nil, registrations, nil, period.WindowMonth, now)
	if summary.RegistrationCollected != 100 {
		t.Fatalf("collected = %v, want 100", summary.RegistrationCollected)
	}
	if summary.RegistrationPending != 80 {
		t.Fatalf("pending = %v, want 80", summary.RegistrationPending)
	}
	if summary.TotalCollected != 100 || summary.TotalOutstanding != 80 {
		t.Fatalf("totals = %+v", summary)
	}

	all := BuildFinancialSummary(nil, registrations, nil, period.WindowAll, now)
	if all.RegistrationCollected != 1099 {
		t.Fatalf("all-time collected = %v, want 1099", all.RegistrationCollected)
	}
}
