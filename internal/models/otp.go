package models

import (
	"time"

	"gorm.io/gorm"
)

// OTPTTL is how long a one-time code stays valid after creation.
const OTPTTL = 5 * time.Minute

// EmailOTP is a one-time code bound to an email address. Records are
// never referenced by foreign key; verification selects the newest
// unverified record per address and expiry is evaluated lazily.
type EmailOTP struct {
	gorm.Model
	Email    string `gorm:"not null;index;size:100"`
	Code     string `gorm:"not null;size:6"`
	Verified bool   `gorm:"default:false"`
}

// IsExpired reports whether the code is past its 5-minute window.
func (o *EmailOTP) IsExpired() bool {
	return time.Now().After(o.CreatedAt.Add(OTPTTL))
}

// PhoneOTP is identical in shape to EmailOTP but keyed by phone number.
// It backs both phone verification at registration and at base-profile
// completion.
type PhoneOTP struct {
	gorm.Model
	Phone    string `gorm:"not null;index;size:15"`
	Code     string `gorm:"not null;size:6"`
	Verified bool   `gorm:"default:false"`
}

func (o *PhoneOTP) IsExpired() bool {
	return time.Now().After(o.CreatedAt.Add(OTPTTL))
}
