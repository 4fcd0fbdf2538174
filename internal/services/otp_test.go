package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/storage"
)

func seedEmailOTP(t *testing.T, store storage.Store, email, code string, age time.Duration) *models.EmailOTP {
	t.Helper()
	otp, err := store.CreateEmailOTP(&models.EmailOTP{Email: email, Code: code})
	require.NoError(t, err)
	if age > 0 {
		otp.CreatedAt = time.Now().Add(-age)
		require.NoError(t, store.UpdateEmailOTP(otp))
	}
	return otp
}

func TestIssueEmailGeneratesSixDigits(t *testing.T) {
	svc := NewOTPService(storage.NewMemoryStore())

	otp, err := svc.IssueEmail("a@example.com")
	require.NoError(t, err)
	require.Len(t, otp.Code, 6)
	for _, r := range otp.Code {
		require.True(t, r >= '0' && r <= '9')
	}
}

func TestVerifyEmailSucceedsJustBeforeExpiry(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewOTPService(store)

	seedEmailOTP(t, store, "a@example.com", "123456", models.OTPTTL-10*time.Second)

	otp, err := svc.VerifyEmail("a@example.com", "123456")
	require.NoError(t, err)
	require.True(t, otp.Verified)
}

func TestVerifyEmailFailsJustAfterExpiry(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewOTPService(store)

	seedEmailOTP(t, store, "a@example.com", "123456", models.OTPTTL+time.Second)

	_, err := svc.VerifyEmail("a@example.com", "123456")
	require.ErrorIs(t, err, ErrOTPExpired)

	// Expiry must not delete the record.
	latest, err := store.LatestEmailOTP("a@example.com")
	require.NoError(t, err)
	require.False(t, latest.Verified)
}

func TestVerifyEmailWrongCode(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewOTPService(store)

	seedEmailOTP(t, store, "a@example.com", "123456", 0)

	_, err := svc.VerifyEmail("a@example.com", "654321")
	require.ErrorIs(t, err, ErrOTPNotFound)
}

func TestVerifyEmailNewestCodeWins(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewOTPService(store)

	seedEmailOTP(t, store, "a@example.com", "111111", time.Minute)
	seedEmailOTP(t, store, "a@example.com", "222222", 0)

	// The stale code is unreachable even though its record still exists.
	_, err := svc.VerifyEmail("a@example.com", "111111")
	require.ErrorIs(t, err, ErrOTPNotFound)

	// The resent (newest) code verifies.
	otp, err := svc.VerifyEmail("a@example.com", "222222")
	require.NoError(t, err)
	require.Equal(t, "222222", otp.Code)
}

func TestConsumeEmailEnforcesSingleUse(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewOTPService(store)

	seedEmailOTP(t, store, "a@example.com", "123456", 0)

	otp, err := svc.VerifyEmail("a@example.com", "123456")
	require.NoError(t, err)
	require.NoError(t, svc.ConsumeEmail(otp))

	_, err = svc.VerifyEmail("a@example.com", "123456")
	require.ErrorIs(t, err, ErrOTPNotFound)
}

func TestVerifiedButUnconsumedCodeIsUnreachable(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewOTPService(store)

	seedEmailOTP(t, store, "a@example.com", "123456", 0)

	_, err := svc.VerifyEmail("a@example.com", "123456")
	require.NoError(t, err)

	// Without consumption the record persists, but the verified flag
	// keeps it out of subsequent lookups.
	_, err = svc.VerifyEmail("a@example.com", "123456")
	require.ErrorIs(t, err, ErrOTPNotFound)
}

func TestVerifyPhoneLifecycle(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewOTPService(store)

	issued, err := svc.IssuePhone("+9779812345678")
	require.NoError(t, err)

	otp, err := svc.VerifyPhone("+9779812345678", issued.Code)
	require.NoError(t, err)
	require.True(t, otp.Verified)
	require.NoError(t, svc.ConsumePhone(otp))

	_, err = svc.VerifyPhone("+9779812345678", issued.Code)
	require.ErrorIs(t, err, ErrOTPNotFound)
}

func TestVerifyPhoneUnknownIdentity(t *testing.T) {
	svc := NewOTPService(storage.NewMemoryStore())

	_, err := svc.VerifyPhone("+9779800000000", "123456")
	require.ErrorIs(t, err, ErrOTPNotFound)
}
