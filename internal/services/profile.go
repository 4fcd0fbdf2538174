package services

import (
	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/storage"
)

// ProfileService drives onboarding past registration: phone-verified
// base profile first, then host/driver role profiles.
type ProfileService struct {
	store    storage.Store
	otp      *OTPService
	notifier Notifier
}

func NewProfileService(store storage.Store, otp *OTPService, notifier Notifier) *ProfileService {
	return &ProfileService{store: store, otp: otp, notifier: notifier}
}

// RequestPhoneOTP issues a fresh code and fires the SMS off without
// waiting for delivery.
func (s *ProfileService) RequestPhoneOTP(phone string) error {
	otp, err := s.otp.IssuePhone(phone)
	if err != nil {
		return err
	}
	notifyAsync("OTP SMS", func() error {
		return s.notifier.SendSMSOTP(otp.Phone, otp.Code)
	})
	return nil
}

// CompleteBaseProfile sets name and verified phone on the user. The
// phone-uniqueness check excludes the user themselves so re-submitting
// an already-owned number is not a conflict.
func (s *ProfileService) CompleteBaseProfile(user *models.User, firstName, lastName, phone, code string) error {
	if phone == "" {
		return ErrMissingPhone
	}

	otp, err := s.otp.VerifyPhone(phone, code)
	if err != nil {
		return err
	}

	taken, err := s.store.PhoneTakenByOther(phone, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrPhoneTaken
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.PhoneNumber = &phone
	if err := s.store.UpdateUser(user); err != nil {
		return err
	}

	return s.otp.ConsumePhone(otp)
}

// CreateHostProfile attaches a host profile to the user. The caller has
// already saved the document and gated on HasProfile.
func (s *ProfileService) CreateHostProfile(user *models.User, documentPath string) (*models.HostProfile, error) {
	exists, err := s.store.HasHostProfile(user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyHost
	}
	if documentPath == "" {
		return nil, ErrMissingDocument
	}
	return s.store.CreateHostProfile(&models.HostProfile{
		UserID:            user.ID,
		GovernmentIDPhoto: documentPath,
	})
}

// CreateDriverProfile attaches a driver profile to the user,
// independent of any host profile.
func (s *ProfileService) CreateDriverProfile(user *models.User, documentPath string) (*models.DriverProfile, error) {
	exists, err := s.store.HasDriverProfile(user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyDriver
	}
	if documentPath == "" {
		return nil, ErrMissingDocument
	}
	return s.store.CreateDriverProfile(&models.DriverProfile{
		UserID:              user.ID,
		DrivingLicensePhoto: documentPath,
	})
}

// HasHostProfile reports whether the user already onboarded as a host.
func (s *ProfileService) HasHostProfile(user *models.User) (bool, error) {
	return s.store.HasHostProfile(user.ID)
}

// HasDriverProfile reports whether the user already onboarded as a
// driver.
func (s *ProfileService) HasDriverProfile(user *models.User) (bool, error) {
	return s.store.HasDriverProfile(user.ID)
}
