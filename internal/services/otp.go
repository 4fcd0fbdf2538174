package services

import (
	"errors"
	"fmt"

	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/storage"
	"github.com/movex-app/movex-backend/internal/utils"
)

// OTPService owns the one-time code lifecycle: issue, verify, consume.
// Resending is just another Issue call; older codes for the same
// identity become unreachable because verification always selects the
// newest unverified record, and they age out at the 5-minute mark.
type OTPService struct {
	store storage.Store
}

func NewOTPService(store storage.Store) *OTPService {
	return &OTPService{store: store}
}

// IssueEmail creates and persists a fresh code for the email address.
func (s *OTPService) IssueEmail(email string) (*models.EmailOTP, error) {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}
	return s.store.CreateEmailOTP(&models.EmailOTP{Email: email, Code: code})
}

// VerifyEmail checks the code against the most recent unverified record
// for the address. A wrong code, a stale code superseded by a resend,
// and an already-consumed code are all indistinguishable to the caller;
// each surfaces as ErrOTPNotFound. An expired match is left in place;
// only ConsumeEmail removes a record.
func (s *OTPService) VerifyEmail(email, code string) (*models.EmailOTP, error) {
	otp, err := s.store.LatestEmailOTP(email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrOTPNotFound
		}
		return nil, err
	}
	if otp.Code != code {
		return nil, ErrOTPNotFound
	}
	if otp.IsExpired() {
		return nil, ErrOTPExpired
	}

	otp.Verified = true
	if err := s.store.UpdateEmailOTP(otp); err != nil {
		return nil, err
	}
	return otp, nil
}

// ConsumeEmail deletes a verified record, enforcing single use.
func (s *OTPService) ConsumeEmail(otp *models.EmailOTP) error {
	return s.store.DeleteEmailOTP(otp)
}

// IssuePhone creates and persists a fresh code for the phone number.
func (s *OTPService) IssuePhone(phone string) (*models.PhoneOTP, error) {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}
	return s.store.CreatePhoneOTP(&models.PhoneOTP{Phone: phone, Code: code})
}

// VerifyPhone mirrors VerifyEmail for phone-bound codes.
func (s *OTPService) VerifyPhone(phone, code string) (*models.PhoneOTP, error) {
	otp, err := s.store.LatestPhoneOTP(phone)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrOTPNotFound
		}
		return nil, err
	}
	if otp.Code != code {
		return nil, ErrOTPNotFound
	}
	if otp.IsExpired() {
		return nil, ErrOTPExpired
	}

	otp.Verified = true
	if err := s.store.UpdatePhoneOTP(otp); err != nil {
		return nil, err
	}
	return otp, nil
}

// ConsumePhone deletes a verified record, enforcing single use.
func (s *OTPService) ConsumePhone(otp *models.PhoneOTP) error {
	return s.store.DeletePhoneOTP(otp)
}
