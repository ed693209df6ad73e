// Package session tracks which profiles are currently unlocked.
//
// A session only gates access. Decrypting sensitive profile data always
// requires the password itself.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 30 * time.Minute

// Session is one unlock of a profile. ID is fresh on every Create, so it tells
// two unlocks apart even when they share a timestamp.
type Session struct {
	ID         string
	UnlockedAt time.Time
	ExpiresAt  time.Time
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

type Option func(*Manager)

func WithClock(now func() time.Time) Option {
	return func(manager *Manager) {
		if now != nil {
			manager.now = now
		}
	}
}

func NewManager(ttl time.Duration, options ...Option) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	manager := &Manager{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, option := range options {
		option(manager)
	}
	return manager
}

func (manager *Manager) TTL() time.Duration {
	return manager.ttl
}

// Create starts or restarts the session for profileID.
func (manager *Manager) Create(profileID string) Session {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	now := manager.now()
	session := Session{ID: uuid.NewString(), UnlockedAt: now, ExpiresAt: now.Add(manager.ttl)}
	manager.sessions[profileID] = session
	return session
}

// IsValid reports whether profileID has a live session, dropping it if it expired.
func (manager *Manager) IsValid(profileID string) bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	_, ok := manager.liveLocked(profileID, manager.now())
	return ok
}

func (manager *Manager) Get(profileID string) (Session, bool) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	return manager.liveLocked(profileID, manager.now())
}

// Extend pushes the expiry of a live session out by one TTL. Expired or missing sessions stay gone.
func (manager *Manager) Extend(profileID string) bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	now := manager.now()
	session, ok := manager.liveLocked(profileID, now)
	if !ok {
		return false
	}
	session.ExpiresAt = now.Add(manager.ttl)
	manager.sessions[profileID] = session
	return true
}

func (manager *Manager) Clear(profileID string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	delete(manager.sessions, profileID)
}

func (manager *Manager) ClearAll() {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.sessions = make(map[string]Session)
}

// Sweep evicts every expired session and returns how many were removed.
func (manager *Manager) Sweep() int {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	now := manager.now()
	removed := 0
	for profileID, session := range manager.sessions {
		if now.After(session.ExpiresAt) {
			delete(manager.sessions, profileID)
			removed++
		}
	}
	return removed
}

func (manager *Manager) Len() int {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return len(manager.sessions)
}

func (manager *Manager) liveLocked(profileID string, now time.Time) (Session, bool) {
	session, ok := manager.sessions[profileID]
	if !ok {
		return Session{}, false
	}
	if now.After(session.ExpiresAt) {
		delete(manager.sessions, profileID)
		return Session{}, false
	}
	return session, true
}
