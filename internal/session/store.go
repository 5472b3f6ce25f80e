package session

import (
	"context"
	"time"
)

// Session binds an opaque identifier to an authenticated user.
// It stores identity pointers only, never auth state.
type Session struct {
	SessionID string    // opaque identifier, see GenerateID
	UserID    string    // references the user record
	CreatedAt time.Time
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
//
// Get returns (nil, nil) for an absent session. Delete is idempotent:
// removing an absent or already-removed session is not an error. A
// deleted session must never be returned by a later Get.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
