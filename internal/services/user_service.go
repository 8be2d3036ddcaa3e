// Package services orchestrates domain operations across storage, AMQP and
// auth. Each service declares the slice of the repository it consumes, so
// tests can substitute small in-memory fakes.
package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"fintrack/internal/auth"
	"fintrack/internal/core"
)

type UserStore interface {
	CreateUser(ctx context.Context, u core.User) (core.User, error)
	GetUserByEmail(ctx context.Context, email string) (core.User, error)
	GetUser(ctx context.Context, id int64) (core.User, error)
}

// UserService handles registration and login.
type UserService struct {
	store  UserStore
	tokens *auth.TokenManager
}

func NewUserService(store UserStore, tokens *auth.TokenManager) *UserService {
	return &UserService{store: store, tokens: tokens}
}

// Register creates a user with a hashed password and returns the user plus a
// signed token so the client is logged in immediately.
func (s *UserService) Register(ctx context.Context, name, email, password string) (core.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || len(name) > 100 {
		return core.User{}, "", core.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return core.User{}, "", core.ErrInvalidInput
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return core.User{}, "", err
	}

	user, err := s.store.CreateUser(ctx, core.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return core.User{}, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return core.User{}, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns a signed token. A missing user and a
// wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (core.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return core.User{}, "", core.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return core.User{}, "", core.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return core.User{}, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// GetUser returns the profile for an authenticated user id.
func (s *UserService) GetUser(ctx context.Context, id int64) (core.User, error) {
	return s.store.GetUser(ctx, id)
}
