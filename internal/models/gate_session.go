package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GateSession tracks an open admin gate. The gate is a visibility toggle,
// not an authorization boundary; sessions exist so "open" state lives
// server-side with an explicit lifecycle instead of in a global flag.
type GateSession struct {
	ID        string         `json:"id"       gorm:"type:char(36);primaryKey"`
	IP        string         `json:"ip"`
	UA        string         `json:"ua"`
	ExpiresAt time.Time      `json:"expires_at"`
	RevokedAt *time.Time     `json:"revoked_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (GateSession) TableName() string { return "gate_sessions" }

func (s *GateSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
