// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/voltpoint/voltpoint/internal/auth"
	"github.com/voltpoint/voltpoint/internal/metrics"
	"github.com/voltpoint/voltpoint/internal/model"
	"github.com/voltpoint/voltpoint/internal/repository"
)

// Service errors shared across the auth operations.
var (
	ErrMissingFields      = errors.New("required fields are missing")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// AuthService handles login and account registration.
type AuthService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		repo:    repo,
		metrics: recorder,
	}
}

// Login verifies credentials and returns the caller identity.
// Administrators are checked before users, so an email present in both
// tables resolves to the admin account.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err == nil {
		match, verr := auth.VerifyPassword(password, admin.PasswordHash)
		if verr == nil && match {
			s.metrics.IncLoginSuccess(string(model.RoleAdmin))
			return &model.Identity{
				ID:    admin.ID,
				Role:  model.RoleAdmin,
				Email: admin.Email,
				Name:  admin.DisplayName(),
			}, nil
		}
		// Wrong password for an admin email never falls through to the
		// user table.
		s.metrics.IncLoginFailure()
		return nil, ErrInvalidCredentials
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailure()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLoginFailure()
		return nil, ErrInvalidCredentials
	}

	s.metrics.IncLoginSuccess(string(model.RoleUser))
	return &model.Identity{
		ID:    user.ID,
		Role:  model.RoleUser,
		Email: user.Email,
		Name:  user.DisplayName(),
	}, nil
}

// RegisterInput defines input for creating a user account.
type RegisterInput struct {
	Email     string
	Password  string
	Nome      string
	Cognome   string
	Telefono  string
	Indirizzo string
	Citta     string
}

// Register creates a new user account with a hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Email == "" || input.Password == "" || input.Nome == "" || input.Cognome == "" {
		return nil, ErrMissingFields
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Email:        input.Email,
		PasswordHash: hash,
		Nome:         input.Nome,
		Cognome:      input.Cognome,
		Telefono:     input.Telefono,
		Indirizzo:    input.Indirizzo,
		Citta:        input.Citta,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncRegistration()

	return user, nil
}
