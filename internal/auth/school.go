package auth

import (
	"context"
	"database/sql"
	"errors"

	schoolrepo "campus-cloud/internal/schools/infrastructure/postgres"
)

var (
	// ErrSchoolMismatch indicates a request for a different school than the token's.
	ErrSchoolMismatch = errors.New("school mismatch")
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("resource not found")
	// ErrSchoolInactive indicates the school has been deactivated.
	ErrSchoolInactive = errors.New("school inactive")
)

// SchoolAccessChecker validates a caller's access to a school.
type SchoolAccessChecker interface {
	EnsureSchoolAccess(ctx context.Context, claimSchoolID, schoolID string) error
}

// SchoolChecker checks school access against the directory.
type SchoolChecker struct {
	repo *schoolrepo.SchoolRepository
}

// NewSchoolChecker constructs a SchoolChecker.
func NewSchoolChecker(db *sql.DB) *SchoolChecker {
	if db == nil {
		return nil
	}
	return &SchoolChecker{repo: schoolrepo.NewSchoolRepository(db)}
}

// EnsureSchoolAccess verifies the token's school matches the requested
// school and that the school still exists and is active.
func (c *SchoolChecker) EnsureSchoolAccess(ctx context.Context, claimSchoolID, schoolID string) error {
	if claimSchoolID == "" || schoolID == "" {
		return nil
	}
	if claimSchoolID != schoolID {
		return ErrSchoolMismatch
	}
	if c == nil || c.repo == nil {
		return nil
	}
	school, err := c.repo.Get(ctx, schoolID)
	if err != nil {
		return err
	}
	if school == nil {
		return ErrNotFound
	}
	if !school.Active {
		return ErrSchoolInactive
	}
	return nil
}
