// Package service provides credential checks for the admin dashboard.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	authModel "github.com/ithalar/team-registration/internal/auth/model"
	"github.com/ithalar/team-registration/internal/auth/repository"
)

// Service defines the auth operations.
type Service interface {
	// Login checks the email/password pair against the admin users table.
	Login(ctx context.Context, email, password string) (*authModel.AdminUser, error)

	// EnsureAdmin creates the admin account if no user with that email
	// exists yet. Used to bootstrap the first login from the environment.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Login checks the email/password pair against the admin users table.
// Unknown emails and wrong passwords return the same error.
func (s *service) Login(ctx context.Context, email, password string) (*authModel.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, authModel.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, authModel.ErrAdminNotFound) {
			return nil, authModel.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warnw("failed admin login attempt", "email", email)
		return nil, authModel.ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin creates the admin account if missing.
func (s *service) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, authModel.ErrAdminNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.Create(ctx, &authModel.AdminUser{Email: email, PasswordHash: string(hash)}); err != nil {
		return err
	}

	s.logger.Infow("bootstrapped admin user", "email", email)
	return nil
}
