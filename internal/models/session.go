package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is a server-side login session. The ResumeTarget slot holds
// the onboarding step to return to after the base profile is completed;
// it is consumed on read.
type Session struct {
	gorm.Model
	Token        string    `gorm:"uniqueIndex;not null;size:36"`
	UserID       uint      `gorm:"index;not null"`
	ResumeTarget string    `gorm:"size:64"`
	ExpiresAt    time.Time `gorm:"not null"`
	RevokedAt    *time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// IsValid reports whether the session can still authenticate requests.
func (s *Session) IsValid() bool {
	return s.RevokedAt == nil && time.Now().Before(s.ExpiresAt)
}
