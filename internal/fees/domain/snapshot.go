package fees

import "time"

// MonthlySnapshot is the pre-aggregated monthly financial picture
// computed by the remote snapshot service. When present it is
// authoritative for the school-fee portion of a current-month report.
type MonthlySnapshot struct {
	SchoolID           string
	MonthStart         time.Time
	CollectedThisMonth float64
	StillOutstanding   float64
	DueThisMonth       float64
}
