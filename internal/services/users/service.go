package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lectern/classroom-api/internal/models"
	"github.com/lectern/classroom-api/internal/services/auth"
	"github.com/rs/zerolog/log"
)

type service struct {
	repo Repository
}

// NewService creates a user account service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Register(ctx context.Context, fullName, email, password string, role models.UserRole) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if role == "" {
		role = models.UserRoleStudent
	}

	user := &models.User{
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	log.Info().
		Uint("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("User registered")

	return user, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
