package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/storage"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	store    storage.Store
	otp      *OTPService
	notifier Notifier
}

func NewAuthService(store storage.Store, otp *OTPService, notifier Notifier) *AuthService {
	return &AuthService{store: store, otp: otp, notifier: notifier}
}

// RequestEmailOTP issues a fresh code and fires the email off without
// waiting for delivery. The address is normalized here so the record
// matches the lookup Register performs later.
func (s *AuthService) RequestEmailOTP(email string) error {
	otp, err := s.otp.IssueEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	notifyAsync("OTP email", func() error {
		return s.notifier.SendEmailOTP(otp.Email, otp.Code)
	})
	return nil
}

// Register creates an account once the email OTP checks out. The OTP is
// verified before the duplicate-email check; the code is only consumed
// when the account is actually created.
func (s *AuthService) Register(email, password, password2, code string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if password != password2 {
		return nil, ErrPasswordMismatch
	}

	otp, err := s.otp.VerifyEmail(email, code)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(&models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	if err := s.otp.ConsumeEmail(otp); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials. Every failure collapses into the same
// generic error so callers cannot tell a missing account from a wrong
// password.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EmailExists reports whether an account uses the address. Exposed
// as-is by the front-end form checks.
func (s *AuthService) EmailExists(email string) (bool, error) {
	return s.store.EmailExists(strings.ToLower(strings.TrimSpace(email)))
}

// PhoneExists reports whether an account uses the phone number.
func (s *AuthService) PhoneExists(phone string) (bool, error) {
	return s.store.PhoneExists(phone)
}
