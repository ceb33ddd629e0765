package user

import (
	"context"
	"errors"
	"fmt"

	"bookstack/pkg/generator"
	"bookstack/pkg/password"
	"bookstack/pkg/session"
)

const lenID = 24

type ServiceInterface interface {
	Register(ctx context.Context, username, plaintext string) (*User, error)
	Login(ctx context.Context, username, plaintext string) (*User, string, error)
}

type Service struct {
	Repo   Repository
	Tokens *session.Manager
}

func NewService(repo Repository, tokens *session.Manager) *Service {
	return &Service{Repo: repo, Tokens: tokens}
}

// Register hashes the password and persists a new user. Uniqueness is
// enforced by the store's index, so there is no find-then-create race.
func (s *Service) Register(ctx context.Context, username, plaintext string) (*User, error) {
	digest, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	userID, err := generator.GenerateRandomID(lenID)
	if err != nil {
		return nil, fmt.Errorf("user id: %w", err)
	}

	user := &User{
		ID:       userID,
		Username: username,
		Password: digest,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return user, nil
}

// Login checks the credentials and mints a session token on success.
// An unknown username and a wrong password both come back as
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, plaintext string) (*User, string, error) {
	user, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	ok, err := password.Verify(user.Password, plaintext)
	if err != nil {
		// stored digest is unreadable, that is a server problem and
		// must not look like a wrong password
		return nil, "", fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Mint(user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
