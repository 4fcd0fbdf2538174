package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/storage"
)

func TestSweepRemovesOnlyExpiredRecords(t *testing.T) {
	store := storage.NewMemoryStore()

	stale, err := store.CreateEmailOTP(&models.EmailOTP{Email: "a@example.com", Code: "111111"})
	require.NoError(t, err)
	stale.CreatedAt = time.Now().Add(-models.OTPTTL - time.Minute)
	require.NoError(t, store.UpdateEmailOTP(stale))

	fresh, err := store.CreatePhoneOTP(&models.PhoneOTP{Phone: "+9779812345678", Code: "222222"})
	require.NoError(t, err)

	job := NewCleanupJob(store, time.Hour)
	job.sweep()

	_, err = store.LatestEmailOTP("a@example.com")
	require.ErrorIs(t, err, storage.ErrNotFound)

	kept, err := store.LatestPhoneOTP(fresh.Phone)
	require.NoError(t, err)
	require.Equal(t, "222222", kept.Code)
}
