package payments

import (
	"strings"
	"time"
)

// Tier buckets the open set of upstream payment statuses.
type Tier string

const (
	TierCompleted Tier = "completed"
	TierPending   Tier = "pending"
	TierRejected  Tier = "rejected"
)

// Status membership lists. Anything outside all three lists is treated
// as pending, the conservative default: unknown money is expected money,
// never silently dropped.
var (
	completedStatuses = []string{"completed", "complete", "paid", "success", "successful", "approved", "verified"}
	pendingStatuses   = []string{"pending", "processing", "submitted", "awaiting_verification", "pending_verification"}
	rejectedStatuses  = []string{"rejected", "failed", "declined", "cancelled", "reversed"}
)

// ClassifyStatus maps a raw payment status onto its tier.
func ClassifyStatus(status string) Tier {
	normalized := strings.ToLower(strings.TrimSpace(status))
	for _, s := range completedStatuses {
		if normalized == s {
			return TierCompleted
		}
	}
	for _, s := range rejectedStatuses {
		if normalized == s {
			return TierRejected
		}
	}
	for _, s := range pendingStatuses {
		if normalized == s {
			return TierPending
		}
	}
	return TierPending
}

// Payment is money reported against the school, optionally tied to a
// student. Description and Metadata carry the free text used to infer
// method and purpose.
type Payment struct {
	ID            string
	SchoolID      string
	StudentID     string
	Amount        float64
	Status        string
	Reference     string
	AttachmentURL string
	Description   string
	Metadata      map[string]string
	CreatedAt     time.Time
}

// Tier returns the payment's status tier.
func (p Payment) Tier() Tier {
	return ClassifyStatus(p.Status)
}

// MissingEvidence reports whether the payment carries neither a
// reference nor an attachment.
func (p Payment) MissingEvidence() bool {
	return p.Reference == "" && p.AttachmentURL == ""
}

// MethodHint returns the free text used for method classification.
func (p Payment) MethodHint() string {
	if v := p.Metadata["payment_method"]; v != "" {
		return v
	}
	if v := p.Metadata["method"]; v != "" {
		return v
	}
	return p.Description
}

// PurposeHint returns the free text used for purpose classification.
func (p Payment) PurposeHint() string {
	if v := p.Metadata["purpose"]; v != "" {
		return v
	}
	if v := p.Metadata["payment_for"]; v != "" {
		return v
	}
	return p.Description
}
