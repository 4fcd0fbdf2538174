package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/movex-app/movex-backend/internal/models"
)

func TestLatestEmailOTPTieBreaksByID(t *testing.T) {
	store := NewMemoryStore()
	created := time.Now()

	first, err := store.CreateEmailOTP(&models.EmailOTP{Email: "a@example.com", Code: "111111"})
	require.NoError(t, err)
	first.CreatedAt = created
	require.NoError(t, store.UpdateEmailOTP(first))

	second, err := store.CreateEmailOTP(&models.EmailOTP{Email: "a@example.com", Code: "222222"})
	require.NoError(t, err)
	second.CreatedAt = created
	require.NoError(t, store.UpdateEmailOTP(second))

	// Two codes in the same timestamp tick: the later insert wins.
	latest, err := store.LatestEmailOTP("a@example.com")
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)
	require.Equal(t, "222222", latest.Code)
}

func TestLatestPhoneOTPTieBreaksByID(t *testing.T) {
	store := NewMemoryStore()
	created := time.Now()

	first, err := store.CreatePhoneOTP(&models.PhoneOTP{Phone: "+9779812345678", Code: "111111"})
	require.NoError(t, err)
	first.CreatedAt = created
	require.NoError(t, store.UpdatePhoneOTP(first))

	second, err := store.CreatePhoneOTP(&models.PhoneOTP{Phone: "+9779812345678", Code: "222222"})
	require.NoError(t, err)
	second.CreatedAt = created
	require.NoError(t, store.UpdatePhoneOTP(second))

	latest, err := store.LatestPhoneOTP("+9779812345678")
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)
}
