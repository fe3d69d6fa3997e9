package application

import (
	payments "campus-cloud/internal/payments/domain"
	uniforms "campus-cloud/internal/uniforms/domain"
)

// BuildSummary cross-references uniform orders against payment evidence
// whose free text points at uniforms. Coverage compares distinct
// submitting students against the eligible roster size.
func BuildSummary(
	orders []uniforms.Order,
	uploads []payments.ProofOfPayment,
	pays []payments.Payment,
	eligibleStudents int,
) uniforms.Summary {
	summary := uniforms.Summary{EligibleCount: eligibleStudents}

	submitted := make(map[string]struct{})
	for _, order := range orders {
		if order.StudentID != "" {
			submitted[order.StudentID] = struct{}{}
		}
	}
	summary.SubmittedCount = len(submitted)

	for _, payment := range pays {
		if !payments.IsUniformPurpose(payment.PurposeHint()) {
			continue
		}
		switch payment.Tier() {
		case payments.TierCompleted:
			summary.PaidAmount += payment.Amount
			summary.PaidCount++
		case payments.TierPending:
			summary.PendingAmount += payment.Amount
			summary.PendingCount++
		}
	}

	for _, pop := range uploads {
		if !payments.IsUniformPurpose(pop.Description) {
			continue
		}
		switch pop.State() {
		case payments.POPApproved:
			summary.PaidAmount += pop.Amount
			summary.PaidCount++
		case payments.POPPending:
			summary.PendingAmount += pop.Amount
			summary.PendingCount++
		}
	}

	return summary
}
