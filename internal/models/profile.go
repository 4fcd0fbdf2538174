package models

import "gorm.io/gorm"

// HostProfile lets a user list parking spots. At most one per user.
type HostProfile struct {
	gorm.Model
	UserID            uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	GovernmentIDPhoto string `json:"government_id_photo" gorm:"not null"`
	IsBanned          bool   `json:"is_banned" gorm:"default:false"`

	ParkingSpots []ParkingSpot `json:"parking_spots,omitempty" gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE"`
}

// DriverProfile lets a user book parking spots. At most one per user,
// independent of any host profile on the same user.
type DriverProfile struct {
	gorm.Model
	UserID              uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	DrivingLicensePhoto string `json:"driving_license_photo" gorm:"not null"`
	IsBanned            bool   `json:"is_banned" gorm:"default:false"`
}
