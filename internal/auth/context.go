package auth

import "context"

type contextKey string

const (
	contextKeySchool  contextKey = "auth.school_id"
	contextKeyRole    contextKey = "auth.role"
	contextKeySubject contextKey = "auth.subject"
)

// WithIdentity attaches the verified caller identity to the request
// context. Handlers downstream scope every query by this school.
func WithIdentity(ctx context.Context, schoolID string, role Role, subject string) context.Context {
	ctx = context.WithValue(ctx, contextKeySchool, schoolID)
	ctx = context.WithValue(ctx, contextKeyRole, role)
	ctx = context.WithValue(ctx, contextKeySubject, subject)
	return ctx
}

// SchoolIDFromContext returns the caller's school, or "" when the
// request was never authenticated.
func SchoolIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value := ctx.Value(contextKeySchool)
	if schoolID, ok := value.(string); ok {
		return schoolID
	}
	return ""
}

// RoleFromContext extracts role from context.
func RoleFromContext(ctx context.Context) Role {
	if ctx == nil {
		return ""
	}
	value := ctx.Value(contextKeyRole)
	if role, ok := value.(Role); ok {
		return role
	}
	if role, ok := value.(string); ok {
		if normalized, valid := NormalizeRole(role); valid {
			return normalized
		}
	}
	return ""
}

// SubjectFromContext extracts subject from context.
func SubjectFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value := ctx.Value(contextKeySubject)
	if subject, ok := value.(string); ok {
		return subject
	}
	return ""
}
