package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/pkg/gatesession"
	"github.com/hjstudio/core/internal/pkg/jwt"
	"github.com/hjstudio/core/internal/pkg/response"
	"gorm.io/gorm"
)

const ContextKeyGateSID = "gate_session_id"

// Gate returns a middleware that requires an open admin gate session.
// The gate is a visibility toggle for editor controls, not a security
// boundary; see the gate module.
func Gate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := ValidateGateToken(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c, "admin gate is closed")
			return
		}
		c.Set(ContextKeyGateSID, sid)
		gatesession.Touch(db, sid)
		c.Next()
	}
}

// OptionalGate marks the request as gate-open if a valid token is present,
// but does not block it.
func OptionalGate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sid, err := ValidateGateToken(db, extractToken(c)); err == nil {
			c.Set(ContextKeyGateSID, sid)
			gatesession.Touch(db, sid)
		}
		c.Next()
	}
}

// ValidateGateToken checks the JWT and its backing session row, returning
// the session id when the gate is open.
func ValidateGateToken(db *gorm.DB, rawToken string) (string, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return "", errors.New("token is required")
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return "", err
	}
	open, err := gatesession.IsOpen(db, claims.SessionID)
	if err != nil {
		return "", err
	}
	if !open {
		return "", errors.New("gate session expired or closed")
	}
	return claims.SessionID, nil
}

// CurrentGateSID extracts the gate session ID from context.
func CurrentGateSID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyGateSID)
	id, _ := v.(string)
	return id
}

// IsGateOpen reports whether the request carries an open gate session.
func IsGateOpen(c *gin.Context) bool {
	return CurrentGateSID(c) != ""
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
