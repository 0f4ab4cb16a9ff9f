package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionToken is the opaque credential issued at login. The unique index on
// UserID keeps the model at one active session per user: re-login hands back
// the existing row, logout deletes it.
type SessionToken struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);uniqueIndex;not null"`
	Token     string    `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time
}

func (s *SessionToken) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
