package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/storage"
)

const sessionTTL = 14 * 24 * time.Hour

// SessionService issues and resolves login sessions. Each session is a
// database row (so it can be revoked and can carry the onboarding
// resume target) addressed by a signed JWT held in a cookie.
type SessionService struct {
	store  storage.Store
	secret []byte
}

func NewSessionService(store storage.Store, secret string) *SessionService {
	return &SessionService{store: store, secret: []byte(secret)}
}

// Open creates a session for the user and returns the signed cookie
// value.
func (s *SessionService) Open(userID uint) (string, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if _, err := s.store.CreateSession(session); err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ID:        session.Token,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Resolve parses a cookie value and loads the live session behind it.
func (s *SessionService) Resolve(cookie string) (*models.Session, error) {
	token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrSessionInvalid
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, ErrSessionInvalid
	}

	session, err := s.store.GetSession(claims.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	if !session.IsValid() {
		return nil, ErrSessionInvalid
	}
	return session, nil
}

// Revoke invalidates a session (logout).
func (s *SessionService) Revoke(session *models.Session) error {
	now := time.Now()
	session.RevokedAt = &now
	return s.store.UpdateSession(session)
}

// SetResumeTarget stores the onboarding step to return to once the base
// profile is complete.
func (s *SessionService) SetResumeTarget(session *models.Session, target string) error {
	session.ResumeTarget = target
	return s.store.UpdateSession(session)
}

// PopResumeTarget returns the stored resume target and clears it.
// Read-once semantics.
func (s *SessionService) PopResumeTarget(session *models.Session) (string, error) {
	target := session.ResumeTarget
	if target == "" {
		return "", nil
	}
	session.ResumeTarget = ""
	if err := s.store.UpdateSession(session); err != nil {
		return "", err
	}
	return target, nil
}
