package storage

import (
	"errors"
	"time"

	"github.com/movex-app/movex-backend/internal/models"
)

// ErrNotFound is returned by lookups that match no record, regardless of
// backing store.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for storage operations. Uniqueness of
// email and phone is enforced by the backing store, not only by the
// pre-checks in the services layer.
type Store interface {
	// User operations
	CreateUser(user *models.User) (*models.User, error)
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	EmailExists(email string) (bool, error)
	PhoneExists(phone string) (bool, error)
	PhoneTakenByOther(phone string, userID uint) (bool, error)

	// Email OTP operations. Latest* return the most recently created
	// unverified record for the identity; older codes are unreachable
	// by design once a newer one exists.
	CreateEmailOTP(otp *models.EmailOTP) (*models.EmailOTP, error)
	LatestEmailOTP(email string) (*models.EmailOTP, error)
	UpdateEmailOTP(otp *models.EmailOTP) error
	DeleteEmailOTP(otp *models.EmailOTP) error

	// Phone OTP operations
	CreatePhoneOTP(otp *models.PhoneOTP) (*models.PhoneOTP, error)
	LatestPhoneOTP(phone string) (*models.PhoneOTP, error)
	UpdatePhoneOTP(otp *models.PhoneOTP) error
	DeletePhoneOTP(otp *models.PhoneOTP) error
	DeleteOTPsCreatedBefore(cutoff time.Time) (int64, error)

	// Role profile operations
	CreateHostProfile(profile *models.HostProfile) (*models.HostProfile, error)
	CreateDriverProfile(profile *models.DriverProfile) (*models.DriverProfile, error)
	GetHostProfile(userID uint) (*models.HostProfile, error)
	HasHostProfile(userID uint) (bool, error)
	HasDriverProfile(userID uint) (bool, error)

	// Session operations
	CreateSession(session *models.Session) (*models.Session, error)
	GetSession(token string) (*models.Session, error)
	UpdateSession(session *models.Session) error
	DeleteSession(token string) error

	// Parking spot operations
	CreateParkingSpot(spot *models.ParkingSpot) (*models.ParkingSpot, error)
	GetParkingSpotsByHost(hostID uint) ([]*models.ParkingSpot, error)
	CountParkingSpotsByHost(hostID uint) (int64, error)
}
