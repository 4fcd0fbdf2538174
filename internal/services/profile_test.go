package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/storage"
)

func seedPhoneOTP(t *testing.T, store storage.Store, phone, code string, age time.Duration) *models.PhoneOTP {
	t.Helper()
	otp, err := store.CreatePhoneOTP(&models.PhoneOTP{Phone: phone, Code: code})
	require.NoError(t, err)
	if age > 0 {
		otp.CreatedAt = time.Now().Add(-age)
		require.NoError(t, store.UpdatePhoneOTP(otp))
	}
	return otp
}

func seedUser(t *testing.T, store storage.Store, email string) *models.User {
	t.Helper()
	user, err := store.CreateUser(&models.User{Email: email, PasswordHash: "x", IsActive: true})
	require.NoError(t, err)
	return user
}

func newProfileService(store storage.Store) *ProfileService {
	return NewProfileService(store, NewOTPService(store), &recordingNotifier{})
}

func TestCompleteBaseProfile(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	user := seedUser(t, store, "a@example.com")
	seedPhoneOTP(t, store, "+9779812345678", "123456", 0)

	err := svc.CompleteBaseProfile(user, "Asha", "Rai", "+9779812345678", "123456")
	require.NoError(t, err)
	require.True(t, user.HasProfile())
	require.Equal(t, "+9779812345678", user.Phone())

	// The OTP was consumed.
	_, err = store.LatestPhoneOTP("+9779812345678")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCompleteBaseProfileMissingPhone(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	user := seedUser(t, store, "a@example.com")

	err := svc.CompleteBaseProfile(user, "Asha", "Rai", "", "123456")
	require.ErrorIs(t, err, ErrMissingPhone)
}

func TestCompleteBaseProfileExpiredOTP(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	user := seedUser(t, store, "a@example.com")
	seedPhoneOTP(t, store, "+9779812345678", "123456", models.OTPTTL+time.Second)

	err := svc.CompleteBaseProfile(user, "Asha", "Rai", "+9779812345678", "123456")
	require.ErrorIs(t, err, ErrOTPExpired)
	require.False(t, user.HasProfile())
}

func TestCompleteBaseProfilePhoneTaken(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	phone := "+9779812345678"
	other := seedUser(t, store, "other@example.com")
	other.PhoneNumber = &phone
	require.NoError(t, store.UpdateUser(other))

	user := seedUser(t, store, "a@example.com")
	seedPhoneOTP(t, store, phone, "123456", 0)

	err := svc.CompleteBaseProfile(user, "Asha", "Rai", phone, "123456")
	require.ErrorIs(t, err, ErrPhoneTaken)
}

func TestCompleteBaseProfileOwnPhoneIsNotAConflict(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	phone := "+9779812345678"
	user := seedUser(t, store, "a@example.com")
	user.PhoneNumber = &phone
	require.NoError(t, store.UpdateUser(user))

	seedPhoneOTP(t, store, phone, "123456", 0)

	err := svc.CompleteBaseProfile(user, "Asha", "Rai", phone, "123456")
	require.NoError(t, err)
}

func TestCreateHostProfile(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	user := seedUser(t, store, "a@example.com")

	profile, err := svc.CreateHostProfile(user, "uploads/gov_ids/doc.png")
	require.NoError(t, err)
	require.Equal(t, user.ID, profile.UserID)
	require.False(t, profile.IsBanned)

	// Second attempt is a conflict.
	_, err = svc.CreateHostProfile(user, "uploads/gov_ids/doc2.png")
	require.ErrorIs(t, err, ErrAlreadyHost)
}

func TestCreateHostProfileMissingDocument(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	user := seedUser(t, store, "a@example.com")

	_, err := svc.CreateHostProfile(user, "")
	require.ErrorIs(t, err, ErrMissingDocument)
}

func TestHostAndDriverProfilesAreIndependent(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	user := seedUser(t, store, "a@example.com")

	_, err := svc.CreateHostProfile(user, "uploads/gov_ids/doc.png")
	require.NoError(t, err)
	_, err = svc.CreateDriverProfile(user, "uploads/license/doc.png")
	require.NoError(t, err)

	isHost, err := svc.HasHostProfile(user)
	require.NoError(t, err)
	require.True(t, isHost)

	isDriver, err := svc.HasDriverProfile(user)
	require.NoError(t, err)
	require.True(t, isDriver)

	_, err = svc.CreateDriverProfile(user, "uploads/license/doc2.png")
	require.ErrorIs(t, err, ErrAlreadyDriver)
}

func TestRequestPhoneOTPPersistsCode(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	require.NoError(t, svc.RequestPhoneOTP("+9779812345678"))

	otp, err := store.LatestPhoneOTP("+9779812345678")
	require.NoError(t, err)
	require.Len(t, otp.Code, 6)
}
