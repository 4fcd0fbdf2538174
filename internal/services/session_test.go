package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/movex-app/movex-backend/internal/storage"
)

func TestSessionOpenResolveRevoke(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewSessionService(store, "test-secret")

	cookie, err := svc.Open(42)
	require.NoError(t, err)
	require.NotEmpty(t, cookie)

	session, err := svc.Resolve(cookie)
	require.NoError(t, err)
	require.Equal(t, uint(42), session.UserID)

	require.NoError(t, svc.Revoke(session))

	_, err = svc.Resolve(cookie)
	require.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionResolveRejectsGarbage(t *testing.T) {
	svc := NewSessionService(storage.NewMemoryStore(), "test-secret")

	_, err := svc.Resolve("not-a-jwt")
	require.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionResolveRejectsForeignSignature(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewSessionService(store, "test-secret")
	other := NewSessionService(store, "different-secret")

	cookie, err := other.Open(42)
	require.NoError(t, err)

	_, err = svc.Resolve(cookie)
	require.ErrorIs(t, err, ErrSessionInvalid)
}

func TestResumeTargetIsReadOnce(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewSessionService(store, "test-secret")

	cookie, err := svc.Open(1)
	require.NoError(t, err)
	session, err := svc.Resolve(cookie)
	require.NoError(t, err)

	// Empty by default.
	target, err := svc.PopResumeTarget(session)
	require.NoError(t, err)
	require.Empty(t, target)

	require.NoError(t, svc.SetResumeTarget(session, "/host-profile-create"))

	target, err = svc.PopResumeTarget(session)
	require.NoError(t, err)
	require.Equal(t, "/host-profile-create", target)

	// Consumed on read.
	target, err = svc.PopResumeTarget(session)
	require.NoError(t, err)
	require.Empty(t, target)
}
