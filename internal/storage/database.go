package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/movex-app/movex-backend/internal/models"
)

// DatabaseStore is the PostgreSQL-backed store.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore wraps a GORM handle.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ===== User operations =====

func (s *DatabaseStore) CreateUser(user *models.User) (*models.User, error) {
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DatabaseStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *DatabaseStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *DatabaseStore) UpdateUser(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *DatabaseStore) EmailExists(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (s *DatabaseStore) PhoneExists(phone string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("phone_number = ?", phone).Count(&count).Error
	return count > 0, err
}

func (s *DatabaseStore) PhoneTakenByOther(phone string, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("phone_number = ? AND id <> ?", phone, userID).
		Count(&count).Error
	return count > 0, err
}

// ===== Email OTP operations =====

func (s *DatabaseStore) CreateEmailOTP(otp *models.EmailOTP) (*models.EmailOTP, error) {
	if err := s.db.Create(otp).Error; err != nil {
		return nil, err
	}
	return otp, nil
}

func (s *DatabaseStore) LatestEmailOTP(email string) (*models.EmailOTP, error) {
	var otp models.EmailOTP
	err := s.db.Where("email = ? AND verified = ?", email, false).
		Order("created_at DESC, id DESC").
		First(&otp).Error
	if err != nil {
		return nil, translate(err)
	}
	return &otp, nil
}

func (s *DatabaseStore) UpdateEmailOTP(otp *models.EmailOTP) error {
	return s.db.Save(otp).Error
}

func (s *DatabaseStore) DeleteEmailOTP(otp *models.EmailOTP) error {
	return s.db.Unscoped().Delete(otp).Error
}

// ===== Phone OTP operations =====

func (s *DatabaseStore) CreatePhoneOTP(otp *models.PhoneOTP) (*models.PhoneOTP, error) {
	if err := s.db.Create(otp).Error; err != nil {
		return nil, err
	}
	return otp, nil
}

func (s *DatabaseStore) LatestPhoneOTP(phone string) (*models.PhoneOTP, error) {
	var otp models.PhoneOTP
	err := s.db.Where("phone = ? AND verified = ?", phone, false).
		Order("created_at DESC, id DESC").
		First(&otp).Error
	if err != nil {
		return nil, translate(err)
	}
	return &otp, nil
}

func (s *DatabaseStore) UpdatePhoneOTP(otp *models.PhoneOTP) error {
	return s.db.Save(otp).Error
}

func (s *DatabaseStore) DeletePhoneOTP(otp *models.PhoneOTP) error {
	return s.db.Unscoped().Delete(otp).Error
}

func (s *DatabaseStore) DeleteOTPsCreatedBefore(cutoff time.Time) (int64, error) {
	var total int64

	res := s.db.Unscoped().Where("created_at < ?", cutoff).Delete(&models.EmailOTP{})
	if res.Error != nil {
		return total, res.Error
	}
	total += res.RowsAffected

	res = s.db.Unscoped().Where("created_at < ?", cutoff).Delete(&models.PhoneOTP{})
	if res.Error != nil {
		return total, res.Error
	}
	total += res.RowsAffected

	return total, nil
}

// ===== Role profile operations =====

func (s *DatabaseStore) CreateHostProfile(profile *models.HostProfile) (*models.HostProfile, error) {
	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *DatabaseStore) CreateDriverProfile(profile *models.DriverProfile) (*models.DriverProfile, error) {
	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *DatabaseStore) GetHostProfile(userID uint) (*models.HostProfile, error) {
	var profile models.HostProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *DatabaseStore) HasHostProfile(userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.HostProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (s *DatabaseStore) HasDriverProfile(userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.DriverProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// ===== Session operations =====

func (s *DatabaseStore) CreateSession(session *models.Session) (*models.Session, error) {
	if err := s.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DatabaseStore) GetSession(token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (s *DatabaseStore) UpdateSession(session *models.Session) error {
	return s.db.Save(session).Error
}

func (s *DatabaseStore) DeleteSession(token string) error {
	return s.db.Unscoped().Where("token = ?", token).Delete(&models.Session{}).Error
}

// ===== Parking spot operations =====

func (s *DatabaseStore) CreateParkingSpot(spot *models.ParkingSpot) (*models.ParkingSpot, error) {
	if err := s.db.Create(spot).Error; err != nil {
		return nil, err
	}
	return spot, nil
}

func (s *DatabaseStore) GetParkingSpotsByHost(hostID uint) ([]*models.ParkingSpot, error) {
	var spots []*models.ParkingSpot
	err := s.db.Preload("Capacities").Preload("Images").
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&spots).Error
	return spots, err
}

func (s *DatabaseStore) CountParkingSpotsByHost(hostID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.ParkingSpot{}).Where("host_id = ?", hostID).Count(&count).Error
	return count, err
}
