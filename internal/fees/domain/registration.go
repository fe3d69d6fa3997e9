package fees

import "time"

// Registration sources. Registration money arrives through two
// independent tables that disagree on shape, so rows carry their origin.
const (
	RegistrationSourceRegistrations = "registrations"
	RegistrationSourceApplications  = "applications"
)

// Registration is a registration-fee record from either source.
type Registration struct {
	ID        string
	SchoolID  string
	Amount    float64
	Verified  bool
	Status    string
	Source    string
	CreatedAt time.Time
}

// Collected reports whether the registration money is banked: verified
// and approved.
func (r Registration) Collected() bool {
	return r.Verified && r.Status == "approved"
}

// PendingCollection reports whether the registration is still expected:
// unverified but not rejected.
func (r Registration) PendingCollection() bool {
	return !r.Verified && r.Status != "rejected"
}
