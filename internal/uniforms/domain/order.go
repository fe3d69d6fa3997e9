package uniforms

import "time"

// Order is a uniform order submission by a guardian.
type Order struct {
	ID        string
	SchoolID  string
	StudentID string
	Amount    float64
	Status    string
	CreatedAt time.Time
}

// Summary cross-references uniform orders against payment evidence.
// Coverage compares students who submitted an order against the eligible
// roster.
type Summary struct {
	PaidAmount     float64
	PaidCount      int
	PendingAmount  float64
	PendingCount   int
	SubmittedCount int
	EligibleCount  int
}
