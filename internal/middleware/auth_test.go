package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_MissingAuthorizationHeader(t *testing.T) {
	app := drift.New()

	app.Use(Auth(testutil.TestSessionService()))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec := testutil.NewHTTPTestClient(t, app).GET("/protected", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing authorization header")
}

func TestAuth_InvalidAuthorizationFormat(t *testing.T) {
	app := drift.New()

	app.Use(Auth(testutil.TestSessionService()))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, header := range []string{"Token some-token", "Bearer"} {
		t.Run(header, func(t *testing.T) {
			rec := testutil.NewHTTPTestClient(t, app).GET("/protected", map[string]string{"Authorization": header})

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid authorization header format")
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	app := drift.New()

	app.Use(Auth(testutil.TestSessionService()))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec := testutil.NewHTTPTestClient(t, app).GET("/protected", map[string]string{
		"Authorization": testutil.AuthHeader("invalid-token"),
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	sessions := services.NewSessionService("test-secret-key", 1*time.Millisecond)
	app := drift.New()

	token, err := sessions.Issue("uid-1", "test@example.com")
	require.NoError(t, err)

	// Wait for token to expire
	time.Sleep(10 * time.Millisecond)

	app.Use(Auth(sessions))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec := testutil.NewHTTPTestClient(t, app).GET("/protected", map[string]string{
		"Authorization": testutil.AuthHeader(token),
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuth_WrongSecret(t *testing.T) {
	issuer := services.NewSessionService("secret-1", time.Hour)
	validator := services.NewSessionService("secret-2", time.Hour)
	app := drift.New()

	token, err := issuer.Issue("uid-1", "test@example.com")
	require.NoError(t, err)

	app.Use(Auth(validator))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec := testutil.NewHTTPTestClient(t, app).GET("/protected", map[string]string{
		"Authorization": testutil.AuthHeader(token),
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	app := drift.New()

	token := testutil.GenerateTestToken(t, "uid-1", "test@example.com")

	var extractedUID, extractedEmail string

	app.Use(Auth(testutil.TestSessionService()))
	app.Get("/protected", func(c *drift.Context) {
		extractedUID = GetUID(c)
		extractedEmail = GetEmail(c)
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec := testutil.NewHTTPTestClient(t, app).GET("/protected", map[string]string{
		"Authorization": testutil.AuthHeader(token),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", extractedUID)
	assert.Equal(t, "test@example.com", extractedEmail)
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	app := drift.New()

	token := testutil.GenerateTestToken(t, "uid-1", "test@example.com")

	app.Use(Auth(testutil.TestSessionService()))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, bearer := range []string{"bearer", "BEARER", "BeArEr"} {
		t.Run(bearer, func(t *testing.T) {
			rec := testutil.NewHTTPTestClient(t, app).GET("/protected", map[string]string{
				"Authorization": bearer + " " + token,
			})

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGetUID_NotSet(t *testing.T) {
	app := drift.New()

	extractedUID := "sentinel"

	app.Get("/test", func(c *drift.Context) {
		extractedUID = GetUID(c)
		_ = c.JSON(http.StatusOK, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, "", extractedUID)
}
