// Package identity wraps the external identity provider and the stores
// that hold user profile data. Handlers and services only see these
// interfaces; the Firebase-backed implementations live alongside.
package identity

import (
	"context"
	"errors"

	"github.com/conquiguias/conquiguias-api/internal/models"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrWeakPassword = errors.New("weak password")
	ErrUserNotFound = errors.New("user not found")
)

// User is the identity provider's view of an account.
type User struct {
	UID           string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
}

// Provider exposes the account operations the platform delegates to the
// identity service.
type Provider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	GetUser(ctx context.Context, uid string) (*User, error)
	SetPhotoURL(ctx context.Context, uid, url string) error
	EmailVerificationLink(ctx context.Context, email string) (string, error)
	PasswordResetLink(ctx context.Context, email string) (string, error)
}

// ProfileStore persists the per-user profile document.
type ProfileStore interface {
	Set(ctx context.Context, uid string, profile models.UserProfile) error
	Get(ctx context.Context, uid string) (*models.UserProfile, error)
}

// PhotoStore persists profile photos and returns their public URL.
type PhotoStore interface {
	Save(ctx context.Context, uid, fileName string, data []byte, contentType string) (string, error)
}
