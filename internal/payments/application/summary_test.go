package application

import (
	"testing"

	payments "campus-cloud/internal/payments/domain"
)

func TestBuildSummaryTiers(t *testing.T) {
	all := []payments.Payment{
		// Completed with no evidence at all.
		{Amount: 200, Status: "completed"},
		// Completed with a reference.
		{Amount: 300, Status: "paid", Reference: "REF-1", Description: "school fees eft"},
		// Pending, attachment only.
		{Amount: 150, Status: "pending", AttachmentURL: "https://x/pop.jpg"},
		// Unknown status is conservatively pending.
		{Amount: 50, Status: "being looked into"},
		// Rejected money stays out of the breakdowns.
		{Amount: 999, Status: "rejected"},
	}

	summary := BuildSummary(all)
	if summary.CompletedCount != 2 || summary.CompletedAmount != 500 {
		t.Fatalf("completed = %d/%v", summary.CompletedCount, summary.CompletedAmount)
	}
	if summary.PendingCount != 2 || summary.PendingAmount != 200 {
		t.Fatalf("pending = %d/%v", summary.PendingCount, summary.PendingAmount)
	}
	if summary.RejectedCount != 1 || summary.RejectedAmount != 999 {
		t.Fatalf("rejected = %d/%v", summary.RejectedCount, summary.RejectedAmount)
	}
	// The bare completed payment and the bare unknown-status payment.
	if summary.MissingEvidenceCount != 2 {
		t.Fatalf("missing evidence = %d, want 2", summary.MissingEvidenceCount)
	}

	var total float64
	for _, row := range summary.Methods {
		total += row.TotalAmount
	}
	if total != 700 {
		t.Fatalf("method table total = %v, want 700 (rejected excluded)", total)
	}
}

func TestBuildSummaryBreakdownSorted(t *testing.T) {
	all := []payments.Payment{
		{Amount: 100, Status: "completed", Metadata: map[string]string{"payment_method": "cash"}},
		{Amount: 400, Status: "completed", Metadata: map[string]string{"payment_method": "eft"}},
		{Amount: 50, Status: "pending", Metadata: map[string]string{"payment_method": "bank transfer"}},
	}

	summary := BuildSummary(all)
	if len(summary.Methods) != 2 {
		t.Fatalf("methods = %+v", summary.Methods)
	}
	top := summary.Methods[0]
	if top.Bucket != "Bank Transfer / EFT" || top.TotalAmount != 450 {
		t.Fatalf("top method = %+v", top)
	}
	if top.CompletedAmount != 400 || top.PendingAmount != 50 || top.Count != 2 {
		t.Fatalf("top method split = %+v", top)
	}
}

func TestBuildPOPSummary(t *testing.T) {
	uploads := []payments.ProofOfPayment{
		{Amount: 100, Status: "approved", PaymentReference: "REF-9"},
		{Amount: 40, Status: "rejected"},
		{Amount: 70, Status: "uploaded"},
		{Amount: 30, Status: ""},
	}

	summary := BuildPOPSummary(uploads)
	if summary.ApprovedCount != 1 || summary.ApprovedAmount != 100 {
		t.Fatalf("approved = %+v", summary)
	}
	if summary.RejectedCount != 1 || summary.RejectedAmount != 40 {
		t.Fatalf("rejected = %+v", summary)
	}
	if summary.PendingCount != 2 || summary.PendingAmount != 100 {
		t.Fatalf("pending = %+v", summary)
	}
	if summary.MissingReferenceCount != 3 {
		t.Fatalf("missing reference = %d, want 3", summary.MissingReferenceCount)
	}
}
