package payments

import (
	"strings"
	"time"
)

// POPState is the review state of a proof-of-payment upload.
type POPState string

const (
	POPApproved POPState = "approved"
	POPRejected POPState = "rejected"
	POPPending  POPState = "pending"
)

// ProofOfPayment is an uploaded payment evidence record with a declared
// amount.
type ProofOfPayment struct {
	ID               string
	SchoolID         string
	StudentID        string
	Amount           float64
	Status           string
	PaymentReference string
	Description      string
	CreatedAt        time.Time
}

// State buckets the upload's raw status three ways; anything that is
// neither approved nor rejected is still in review.
func (p ProofOfPayment) State() POPState {
	switch strings.ToLower(strings.TrimSpace(p.Status)) {
	case "approved", "verified":
		return POPApproved
	case "rejected", "declined":
		return POPRejected
	default:
		return POPPending
	}
}

// MissingReference reports whether the upload lacks a payment reference.
func (p ProofOfPayment) MissingReference() bool {
	return strings.TrimSpace(p.PaymentReference) == ""
}
