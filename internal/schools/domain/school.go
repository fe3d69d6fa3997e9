package schools

import "time"

// School represents a tenant school in the directory.
type School struct {
	ID        string
	Name      string
	Timezone  string
	Currency  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
