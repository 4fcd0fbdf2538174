package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/movex-app/movex-backend/internal/models"
)

// MemoryStore holds all data in memory. It backs tests and the
// USE_MEMORY_STORE development mode, and enforces the same email/phone
// uniqueness the database does.
type MemoryStore struct {
	mu sync.RWMutex

	users          map[uint]*models.User
	emailOTPs      []*models.EmailOTP
	phoneOTPs      []*models.PhoneOTP
	hostProfiles   map[uint]*models.HostProfile   // keyed by UserID
	driverProfiles map[uint]*models.DriverProfile // keyed by UserID
	sessions       map[string]*models.Session
	spots          map[uint]*models.ParkingSpot

	nextID uint
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:          make(map[uint]*models.User),
		hostProfiles:   make(map[uint]*models.HostProfile),
		driverProfiles: make(map[uint]*models.DriverProfile),
		sessions:       make(map[string]*models.Session),
		spots:          make(map[uint]*models.ParkingSpot),
	}
}

func (m *MemoryStore) nextIDLocked() uint {
	m.nextID++
	return m.nextID
}

// ===== User operations =====

func (m *MemoryStore) CreateUser(user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, fmt.Errorf("duplicate key: email %q", user.Email)
		}
		if user.PhoneNumber != nil && u.PhoneNumber != nil && *u.PhoneNumber == *user.PhoneNumber {
			return nil, fmt.Errorf("duplicate key: phone %q", *user.PhoneNumber)
		}
	}

	user.ID = m.nextIDLocked()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	return user, nil
}

func (m *MemoryStore) GetUser(id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (m *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpdateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return ErrNotFound
	}
	for _, u := range m.users {
		if u.ID == user.ID {
			continue
		}
		if user.PhoneNumber != nil && u.PhoneNumber != nil && *u.PhoneNumber == *user.PhoneNumber {
			return fmt.Errorf("duplicate key: phone %q", *user.PhoneNumber)
		}
	}
	user.UpdatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MemoryStore) EmailExists(email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) PhoneExists(phone string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.PhoneNumber != nil && *u.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) PhoneTakenByOther(phone string, userID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID != userID && u.PhoneNumber != nil && *u.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

// ===== Email OTP operations =====

func (m *MemoryStore) CreateEmailOTP(otp *models.EmailOTP) (*models.EmailOTP, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	otp.ID = m.nextIDLocked()
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now()
	}
	m.emailOTPs = append(m.emailOTPs, otp)
	return otp, nil
}

func (m *MemoryStore) LatestEmailOTP(email string) (*models.EmailOTP, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *models.EmailOTP
	for _, o := range m.emailOTPs {
		if o.Email != email || o.Verified {
			continue
		}
		if latest == nil || o.CreatedAt.After(latest.CreatedAt) ||
			(o.CreatedAt.Equal(latest.CreatedAt) && o.ID > latest.ID) {
			latest = o
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func (m *MemoryStore) UpdateEmailOTP(otp *models.EmailOTP) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, o := range m.emailOTPs {
		if o.ID == otp.ID {
			m.emailOTPs[i] = otp
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteEmailOTP(otp *models.EmailOTP) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, o := range m.emailOTPs {
		if o.ID == otp.ID {
			m.emailOTPs = append(m.emailOTPs[:i], m.emailOTPs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ===== Phone OTP operations =====

func (m *MemoryStore) CreatePhoneOTP(otp *models.PhoneOTP) (*models.PhoneOTP, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	otp.ID = m.nextIDLocked()
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now()
	}
	m.phoneOTPs = append(m.phoneOTPs, otp)
	return otp, nil
}

func (m *MemoryStore) LatestPhoneOTP(phone string) (*models.PhoneOTP, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *models.PhoneOTP
	for _, o := range m.phoneOTPs {
		if o.Phone != phone || o.Verified {
			continue
		}
		if latest == nil || o.CreatedAt.After(latest.CreatedAt) ||
			(o.CreatedAt.Equal(latest.CreatedAt) && o.ID > latest.ID) {
			latest = o
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func (m *MemoryStore) UpdatePhoneOTP(otp *models.PhoneOTP) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, o := range m.phoneOTPs {
		if o.ID == otp.ID {
			m.phoneOTPs[i] = otp
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeletePhoneOTP(otp *models.PhoneOTP) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, o := range m.phoneOTPs {
		if o.ID == otp.ID {
			m.phoneOTPs = append(m.phoneOTPs[:i], m.phoneOTPs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteOTPsCreatedBefore(cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64

	kept := m.emailOTPs[:0]
	for _, o := range m.emailOTPs {
		if o.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, o)
	}
	m.emailOTPs = kept

	keptPhone := m.phoneOTPs[:0]
	for _, o := range m.phoneOTPs {
		if o.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		keptPhone = append(keptPhone, o)
	}
	m.phoneOTPs = keptPhone

	return deleted, nil
}

// ===== Role profile operations =====

func (m *MemoryStore) CreateHostProfile(profile *models.HostProfile) (*models.HostProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.hostProfiles[profile.UserID]; ok {
		return nil, fmt.Errorf("duplicate key: host profile for user %d", profile.UserID)
	}
	profile.ID = m.nextIDLocked()
	profile.CreatedAt = time.Now()
	m.hostProfiles[profile.UserID] = profile
	return profile, nil
}

func (m *MemoryStore) CreateDriverProfile(profile *models.DriverProfile) (*models.DriverProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.driverProfiles[profile.UserID]; ok {
		return nil, fmt.Errorf("duplicate key: driver profile for user %d", profile.UserID)
	}
	profile.ID = m.nextIDLocked()
	profile.CreatedAt = time.Now()
	m.driverProfiles[profile.UserID] = profile
	return profile, nil
}

func (m *MemoryStore) GetHostProfile(userID uint) (*models.HostProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, ok := m.hostProfiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (m *MemoryStore) HasHostProfile(userID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.hostProfiles[userID]
	return ok, nil
}

func (m *MemoryStore) HasDriverProfile(userID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.driverProfiles[userID]
	return ok, nil
}

// ===== Session operations =====

func (m *MemoryStore) CreateSession(session *models.Session) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.ID = m.nextIDLocked()
	session.CreatedAt = time.Now()
	m.sessions[session.Token] = session
	return session, nil
}

func (m *MemoryStore) GetSession(token string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

func (m *MemoryStore) UpdateSession(session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[session.Token]; !ok {
		return ErrNotFound
	}
	m.sessions[session.Token] = session
	return nil
}

func (m *MemoryStore) DeleteSession(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

// ===== Parking spot operations =====

func (m *MemoryStore) CreateParkingSpot(spot *models.ParkingSpot) (*models.ParkingSpot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	spot.ID = m.nextIDLocked()
	spot.CreatedAt = time.Now()
	spot.UpdatedAt = spot.CreatedAt
	m.spots[spot.ID] = spot
	return spot, nil
}

func (m *MemoryStore) GetParkingSpotsByHost(hostID uint) ([]*models.ParkingSpot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var spots []*models.ParkingSpot
	for _, spot := range m.spots {
		if spot.HostID == hostID {
			spots = append(spots, spot)
		}
	}
	return spots, nil
}

func (m *MemoryStore) CountParkingSpotsByHost(hostID uint) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, spot := range m.spots {
		if spot.HostID == hostID {
			count++
		}
	}
	return count, nil
}
