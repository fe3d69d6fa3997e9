package application

import (
	"sort"

	payments "campus-cloud/internal/payments/domain"
)

// BreakdownRow is one method or purpose bucket in a payment breakdown
// table.
type BreakdownRow struct {
	Bucket          string
	Count           int
	TotalAmount     float64
	CompletedAmount float64
	PendingAmount   float64
}

// Summary is the folded payment picture for a school and window.
type Summary struct {
	CompletedCount       int
	CompletedAmount      float64
	PendingCount         int
	PendingAmount        float64
	RejectedCount        int
	RejectedAmount       float64
	MissingEvidenceCount int
	Methods              []BreakdownRow
	Purposes             []BreakdownRow
}

// BuildSummary folds each payment into its status tier and, for money
// still in play, into the method and purpose breakdown tables. Rejected
// payments are counted but kept out of the breakdowns.
func BuildSummary(all []payments.Payment) Summary {
	var summary Summary
	methods := newBreakdown()
	purposes := newBreakdown()

	for _, payment := range all {
		tier := payment.Tier()
		switch tier {
		case payments.TierCompleted:
			summary.CompletedCount++
			summary.CompletedAmount += payment.Amount
		case payments.TierRejected:
			summary.RejectedCount++
			summary.RejectedAmount += payment.Amount
			continue
		default:
			summary.PendingCount++
			summary.PendingAmount += payment.Amount
		}
		if payment.MissingEvidence() {
			summary.MissingEvidenceCount++
		}

		methods.add(payments.NormalizeMethod(payment.MethodHint()), payment.Amount, tier)
		purposes.add(payments.NormalizePurpose(payment.PurposeHint()), payment.Amount, tier)
	}

	summary.Methods = methods.rows()
	summary.Purposes = purposes.rows()
	return summary
}

// POPSummary is the folded proof-of-payment picture.
type POPSummary struct {
	ApprovedCount         int
	ApprovedAmount        float64
	RejectedCount         int
	RejectedAmount        float64
	PendingCount          int
	PendingAmount         float64
	MissingReferenceCount int
}

// BuildPOPSummary splits uploads three ways and counts the ones missing
// a payment reference.
func BuildPOPSummary(uploads []payments.ProofOfPayment) POPSummary {
	var summary POPSummary
	for _, pop := range uploads {
		switch pop.State() {
		case payments.POPApproved:
			summary.ApprovedCount++
			summary.ApprovedAmount += pop.Amount
		case payments.POPRejected:
			summary.RejectedCount++
			summary.RejectedAmount += pop.Amount
		default:
			summary.PendingCount++
			summary.PendingAmount += pop.Amount
		}
		if pop.MissingReference() {
			summary.MissingReferenceCount++
		}
	}
	return summary
}

type breakdown struct {
	buckets map[string]*BreakdownRow
	order   []string
}

func newBreakdown() *breakdown {
	return &breakdown{buckets: make(map[string]*BreakdownRow)}
}

func (b *breakdown) add(bucket string, amount float64, tier payments.Tier) {
	row, ok := b.buckets[bucket]
	if !ok {
		row = &BreakdownRow{Bucket: bucket}
		b.buckets[bucket] = row
		b.order = append(b.order, bucket)
	}
	row.Count++
	row.TotalAmount += amount
	if tier == payments.TierCompleted {
		row.CompletedAmount += amount
	} else {
		row.PendingAmount += amount
	}
}

func (b *breakdown) rows() []BreakdownRow {
	rows := make([]BreakdownRow, 0, len(b.order))
	for _, bucket := range b.order {
		rows = append(rows, *b.buckets[bucket])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalAmount > rows[j].TotalAmount
	})
	return rows
}
