package audit

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Entry is one recorded action against a school's financial data: who
// did what to which resource, with a digest of the request metadata.
type Entry struct {
	ID            string
	SchoolID      string
	Actor         string
	Role          string
	Action        string
	ResourceType  string
	ResourceID    string
	Metadata      json.RawMessage
	PayloadDigest string
	IP            string
	UserAgent     string
	CreatedAt     time.Time
}

// Logger records entries. Handlers treat logging as best effort and
// never fail a request over it.
type Logger interface {
	Log(ctx context.Context, entry Entry) error
}

// NewID generates a random entry id.
func NewID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return "audit-" + hex.EncodeToString(buf)
}

// DigestJSON fingerprints a metadata payload so later edits to the
// stored row are detectable.
func DigestJSON(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
