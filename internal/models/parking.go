package models

import (
	"time"

	"gorm.io/gorm"
)

// Land type choices for a parking spot.
const (
	LandTypeResidential   = "residential"
	LandTypeCommercial    = "commercial"
	LandTypeInstitutional = "institutional"
	LandTypeIndustrial    = "industrial"
	LandTypePublic        = "public"
	LandTypeSpecial       = "special"
)

// Vehicle type choices for capacity rows.
const (
	VehicleBicycle = "bicycle"
	VehicleCar     = "car"
	VehicleBike    = "bike"
	VehicleTruck   = "truck"
)

// ParkingSpot is a host's listed location. Spots are the destination of
// a completed host onboarding; there is no scheduling or availability
// coordination here.
type ParkingSpot struct {
	gorm.Model
	HostID uint `json:"host_id" gorm:"index;not null"`

	LandType          string  `json:"land_type" gorm:"size:30;not null"`
	ReferenceLandmark string  `json:"reference_landmark" gorm:"size:255;not null"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	StreetAddress     string  `json:"street_address" gorm:"size:100"`
	PostalCode        string  `json:"postal_code" gorm:"size:20"`
	Country           string  `json:"country" gorm:"size:100"`
	StateProvince     string  `json:"state_province" gorm:"size:100"`
	CityTownVillage   string  `json:"city_town_village" gorm:"size:100"`

	SecurityFeatures string `json:"security_features" gorm:"type:jsonb;default:'{}'"`

	IsVerified bool `json:"is_verified" gorm:"default:false"`
	IsSecured  bool `json:"is_secured" gorm:"default:false"`

	Capacities []ParkingSpotCapacity `json:"capacities,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Images     []ParkingSpotImage    `json:"images,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// ParkingSpotCapacity counts slots per vehicle type at a spot.
type ParkingSpotCapacity struct {
	gorm.Model
	ParkingSpotID  uint   `json:"parking_spot_id" gorm:"index;not null"`
	VehicleType    string `json:"vehicle_type" gorm:"size:10;not null"`
	TotalSpots     uint   `json:"total_spots" gorm:"default:1"`
	AvailableSpots uint   `json:"available_spots" gorm:"default:1"`
}

// ParkingSpotImage is an uploaded photo of a spot.
type ParkingSpotImage struct {
	gorm.Model
	ParkingSpotID uint   `json:"parking_spot_id" gorm:"index;not null"`
	ImagePath     string `json:"image_path" gorm:"not null"`
}

// Booking records a driver reserving a spot for a time window. Kept as
// plain data; allocation logic is out of scope.
type Booking struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	ParkingSpotID uint       `json:"parking_spot_id" gorm:"index;not null"`
	StartTime     time.Time  `json:"start_time" gorm:"not null"`
	EndTime       time.Time  `json:"end_time" gorm:"not null"`
	ActualEndTime *time.Time `json:"actual_end_time"`
	Ended         bool       `json:"ended" gorm:"default:false"`
}
