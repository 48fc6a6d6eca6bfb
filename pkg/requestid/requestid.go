package requestid

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// New generates a fresh request id.
func New() string {
	return uuid.New().String()
}

// Ensure returns ctx carrying a valid request id and that id.
// An id already in ctx is reused when valid; otherwise a new one replaces it.
func Ensure(ctx context.Context) (context.Context, string) {
	if id := FromContext(ctx); IsValid(id) {
		return ctx, id
	}
	id := New()
	return WithContext(ctx, id), id
}

// IsValid reports whether id is safe to send as a header value.
func IsValid(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
