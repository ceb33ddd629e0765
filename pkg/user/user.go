package user

import (
	"context"
	"errors"
)

// User is the persisted credential record. Password holds the encoded
// argon2id digest and is never serialized.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

var (
	// ErrNotFound indicates that no user exists with the given username.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername indicates the store rejected an insert on
	// the username unique index.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so a failed login never reveals which it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrStoreUnavailable wraps lookup/insert failures from the store.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
}
