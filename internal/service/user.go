package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/pkg/cryptox"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUsernameTaken      = errors.New("username_taken")
)

// UserService owns registration and credential verification.
type UserService struct {
	Store store.Store
}

// Register hashes the password and creates the user. A username that is
// already taken yields ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Store.Users().CreateUser(ctx, username, hash)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the matching
// user. Unknown usernames and wrong passwords are indistinguishable to the
// caller: both are ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}
