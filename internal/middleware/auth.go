package middleware

import (
	"strings"

	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	SessionUIDKey   = "session_uid"
	SessionEmailKey = "session_email"
)

func Auth(sessions *services.SessionService) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := sessions.Validate(parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(SessionUIDKey, claims.UID)
		c.Set(SessionEmailKey, claims.Email)

		c.Next()
	}
}

func GetUID(c *drift.Context) string {
	if uid, ok := c.Get(SessionUIDKey); ok {
		if s, ok := uid.(string); ok {
			return s
		}
	}
	return ""
}

func GetEmail(c *drift.Context) string {
	if email, ok := c.Get(SessionEmailKey); ok {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}
