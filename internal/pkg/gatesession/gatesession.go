package gatesession

import (
	"strings"
	"time"

	"github.com/hjstudio/core/internal/models"
	jwtpkg "github.com/hjstudio/core/internal/pkg/jwt"
	"gorm.io/gorm"
)

// DefaultTTL keeps a gate open for a working day; closing early revokes it.
const DefaultTTL = 12 * time.Hour

// Issue creates a gate session row and signs a JWT bound to it.
func Issue(db *gorm.DB, ip, ua string, ttl time.Duration) (string, *models.GateSession, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &models.GateSession{
		IP:        strings.TrimSpace(ip),
		UA:        strings.TrimSpace(ua),
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(s).Error; err != nil {
		return "", nil, err
	}

	token, err := jwtpkg.Sign(s.ID, ttl)
	if err != nil {
		_ = db.Delete(s).Error
		return "", nil, err
	}
	return token, s, nil
}

// IsOpen reports whether the session is still an open gate.
func IsOpen(db *gorm.DB, sessionID string) (bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false, nil
	}

	var count int64
	err := db.Model(&models.GateSession{}).
		Where("id = ? AND revoked_at IS NULL AND expires_at > ?", sessionID, time.Now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Touch bumps the session's updated_at so stale gates can be told apart.
func Touch(db *gorm.DB, sessionID string) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return
	}
	_ = db.Model(&models.GateSession{}).
		Where("id = ? AND revoked_at IS NULL AND expires_at > ?", sessionID, time.Now()).
		Update("updated_at", time.Now()).Error
}

// Revoke closes the gate for the given session.
func Revoke(db *gorm.DB, sessionID string) error {
	now := time.Now()
	res := db.Model(&models.GateSession{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", &now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeExpired hard-deletes sessions that expired before cutoff.
func PurgeExpired(db *gorm.DB, cutoff time.Time) (int64, error) {
	res := db.Unscoped().
		Where("expires_at < ?", cutoff).
		Delete(&models.GateSession{})
	return res.RowsAffected, res.Error
}
