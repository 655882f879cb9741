package user

import (
	"context"
	"errors"
	"fmt"

	"storefront-api/internal/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles user business logic
type Service struct {
	repo         Repository
	hasher       auth.PasswordHasher
	tokenService auth.TokenService
}

func NewService(repo Repository, hasher auth.PasswordHasher, tokenService auth.TokenService) *Service {
	return &Service{
		repo:         repo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// Register creates a new user account with a hashed password.
// Returns ErrDuplicateEmail if the email is already taken.
func (s *Service) Register(ctx context.Context, firstName, lastName, email, password string) (*User, error) {
	// Explicit lookup first for a clean error; the unique constraint in the
	// repository covers the race between concurrent registrations.
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.repo.Create(ctx, firstName, lastName, email, passwordHash)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Login authenticates a user and issues an access token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Verify(existing.Password, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(existing.ID, existing.Email)
	if err != nil {
		return "", fmt.Errorf("failed to create token: %w", err)
	}

	return token, nil
}

// List returns every user
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
