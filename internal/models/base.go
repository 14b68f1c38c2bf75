package models

import (
	"time"

	"gorm.io/gorm"
)

// Base is the base model for all content entities. The numeric ID is
// assigned by the store on insert and never changes afterwards.
type Base struct {
	ID        uint           `json:"id"         gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}
