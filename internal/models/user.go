package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account created through email OTP registration. The name
// and phone fields stay empty until the base-profile step fills them.
type User struct {
	gorm.Model
	Email        string  `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string  `json:"-" gorm:"not null"`
	FirstName    string  `json:"first_name" gorm:"size:100"`
	LastName     string  `json:"last_name" gorm:"size:100"`
	PhoneNumber  *string `json:"phone_number" gorm:"uniqueIndex;size:20"`
	IsActive     bool    `json:"is_active" gorm:"default:true"`
	IsStaff      bool    `json:"is_staff" gorm:"default:false"`

	HostProfile   *HostProfile   `json:"host_profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	DriverProfile *DriverProfile `json:"driver_profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Bookings      []Booking      `json:"bookings,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// HasProfile reports whether the base profile is complete: a phone
// number plus at least one of the two name fields.
func (u *User) HasProfile() bool {
	return u.PhoneNumber != nil && *u.PhoneNumber != "" &&
		(u.FirstName != "" || u.LastName != "")
}

// Phone returns the phone number or "" when none is set.
func (u *User) Phone() string {
	if u.PhoneNumber == nil {
		return ""
	}
	return *u.PhoneNumber
}

// BeforeCreate normalizes the email so uniqueness is case-insensitive.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}
