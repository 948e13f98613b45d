package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/mail"
	"strings"

	"github.com/conquiguias/conquiguias-api/internal/identity"
	"github.com/conquiguias/conquiguias-api/internal/models"
)

const minPasswordLength = 6

// RegisterInput carries everything the register action accepts. Foto is an
// optional base64-encoded image, with or without a data URL prefix.
type RegisterInput struct {
	Nombre   string
	Apellido string
	Edad     json.Number
	Sexo     string
	Pais     string
	Email    string
	Password string
	Foto     string
	FotoTipo string
}

// AuthUser is the account view returned to clients. The embedded profile is
// flattened into the same JSON object when present.
type AuthUser struct {
	UID             string `json:"uid"`
	Email           string `json:"email"`
	EmailVerificado bool   `json:"emailVerificado"`
	FotoURL         string `json:"fotoURL,omitempty"`
	*models.UserProfile
}

type AuthResult struct {
	User  AuthUser `json:"usuario"`
	Token string   `json:"token,omitempty"`
}

// AuthService implements register, checkAuth and the email flows by
// delegating account state to the identity provider and profile stores.
type AuthService struct {
	provider identity.Provider
	profiles identity.ProfileStore
	photos   identity.PhotoStore
	sessions *SessionService
	email    *EmailService
}

func NewAuthService(provider identity.Provider, profiles identity.ProfileStore, photos identity.PhotoStore, sessions *SessionService, email *EmailService) *AuthService {
	return &AuthService{
		provider: provider,
		profiles: profiles,
		photos:   photos,
		sessions: sessions,
		email:    email,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, identity.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, identity.ErrWeakPassword
	}

	displayName := strings.TrimSpace(input.Nombre + " " + input.Apellido)
	uid, err := s.provider.CreateUser(ctx, email, input.Password, displayName)
	if err != nil {
		return nil, err
	}

	var fotoURL *string
	if input.Foto != "" && s.photos != nil {
		url, err := s.savePhoto(ctx, uid, input.Foto, input.FotoTipo)
		if err != nil {
			log.Printf("failed to save photo for %s: %v", uid, err)
		} else {
			fotoURL = &url
			if err := s.provider.SetPhotoURL(ctx, uid, url); err != nil {
				log.Printf("failed to set photo url for %s: %v", uid, err)
			}
		}
	}

	profile := models.UserProfile{
		Nombre:          input.Nombre,
		Apellido:        input.Apellido,
		Edad:            input.Edad,
		Sexo:            input.Sexo,
		Pais:            input.Pais,
		Email:           email,
		FotoURL:         fotoURL,
		EmailVerificado: false,
	}
	if err := s.profiles.Set(ctx, uid, profile); err != nil {
		return nil, err
	}

	s.sendVerification(ctx, email)

	token, err := s.sessions.Issue(uid, email)
	if err != nil {
		return nil, err
	}

	user := AuthUser{UID: uid, Email: email, UserProfile: &profile}
	if fotoURL != nil {
		user.FotoURL = *fotoURL
	}
	return &AuthResult{User: user, Token: token}, nil
}

// CheckAuth resolves the current account state for a session's uid, merging
// the provider record with the stored profile.
func (s *AuthService) CheckAuth(ctx context.Context, uid string) (*AuthResult, error) {
	account, err := s.provider.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(account.UID, account.Email)
	if err != nil {
		return nil, err
	}

	user := AuthUser{
		UID:             account.UID,
		Email:           account.Email,
		EmailVerificado: account.EmailVerified,
		FotoURL:         account.PhotoURL,
		UserProfile:     profile,
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return identity.ErrInvalidEmail
	}
	s.sendVerification(ctx, email)
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return identity.ErrInvalidEmail
	}

	link, err := s.provider.PasswordResetLink(ctx, email)
	if err != nil {
		return err
	}
	if s.email != nil && s.email.IsConfigured() {
		return s.email.SendPasswordResetLink(email, link)
	}
	log.Printf("password reset link for %s: %s", email, link)
	return nil
}

// sendVerification is best effort; registration succeeds even when the link
// cannot be generated or delivered.
func (s *AuthService) sendVerification(ctx context.Context, email string) {
	link, err := s.provider.EmailVerificationLink(ctx, email)
	if err != nil {
		log.Printf("failed to generate verification link for %s: %v", email, err)
		return
	}
	if s.email != nil && s.email.IsConfigured() {
		if err := s.email.SendVerificationLink(email, link); err != nil {
			log.Printf("failed to send verification email to %s: %v", email, err)
		}
		return
	}
	log.Printf("verification link for %s: %s", email, link)
}

func (s *AuthService) savePhoto(ctx context.Context, uid, encoded, contentType string) (string, error) {
	payload := encoded
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		header := payload[:idx]
		payload = payload[idx+1:]
		if contentType == "" {
			header = strings.TrimPrefix(header, "data:")
			if semi := strings.Index(header, ";"); semi >= 0 {
				contentType = header[:semi]
			}
		}
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode photo: %w", err)
	}

	ext := "jpg"
	if idx := strings.Index(contentType, "/"); idx >= 0 {
		ext = contentType[idx+1:]
	}
	return s.photos.Save(ctx, uid, "perfil."+ext, data, contentType)
}
