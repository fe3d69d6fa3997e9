package roster

import (
	"context"
	"errors"
	"time"
)

// Student represents an enrolled learner in the school roster.
type Student struct {
	ID             string
	SchoolID       string
	FirstName      string
	LastName       string
	ClassID        string
	ClassName      string
	GuardianID     string
	GuardianName   string
	EnrollmentDate *time.Time
	Active         bool
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks student invariants.
func (s Student) Validate() error {
	if s.ID == "" {
		return errors.New("student: empty id")
	}
	if s.SchoolID == "" {
		return errors.New("student: empty school id")
	}
	return nil
}

// Participates reports whether the student takes part in financial
// aggregation. Only active students with an "active" status do.
func (s Student) Participates() bool {
	return s.Active && s.Status == "active"
}

// FullName renders the display name.
func (s Student) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	default:
		return s.FirstName + " " + s.LastName
	}
}

// StudentRepository loads the roster.
type StudentRepository interface {
	ListBySchool(ctx context.Context, schoolID string) ([]Student, error)
}
