package user

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exist")
	ErrInvalidToken   = errors.New("invalid verification token")
)

// User is a registered account. Email is unique across the collection;
// uniqueness is enforced by the store, not by callers.
type User struct {
	ID                bson.ObjectID `bson:"_id,omitempty"`
	Name              string        `bson:"name"`
	Email             string        `bson:"email"`
	PasswordHash      string        `bson:"password_hash"`
	IsVerified        bool          `bson:"is_verified"`
	VerificationToken string        `bson:"verification_token,omitempty"`
	CreatedAt         time.Time     `bson:"created_at"`
}

// Store persists user records.
//
// Create returns ErrDuplicateEmail when a record with the same email
// already exists. GetByEmail and GetByID return ErrNotFound for absent
// records. MarkVerified flips is_verified for the record holding the
// given verification token and returns ErrInvalidToken when no record
// holds it.
type Store interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	MarkVerified(ctx context.Context, token string) error
	Delete(ctx context.Context, email string) error
}
