package services_test

import (
	"testing"
	"time"

	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_IssueAndValidate(t *testing.T) {
	svc := services.NewSessionService("secret", time.Hour)

	token, err := svc.Issue("uid-1", "ana@example.com")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "uid-1", claims.Subject)
}

func TestSession_WrongSecretRejected(t *testing.T) {
	issuer := services.NewSessionService("secret-a", time.Hour)
	validator := services.NewSessionService("secret-b", time.Hour)

	token, err := issuer.Issue("uid-1", "ana@example.com")
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.Error(t, err)
}

func TestSession_ExpiredRejected(t *testing.T) {
	svc := services.NewSessionService("secret", -time.Minute)

	token, err := svc.Issue("uid-1", "ana@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
