package users

import (
	"context"
	"errors"

	"github.com/lectern/classroom-api/internal/models"
)

// Service errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service defines the business logic interface for user accounts
type Service interface {
	Register(ctx context.Context, fullName, email, password string, role models.UserRole) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// Repository defines the interface for user persistence
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
