package services

import "sync"

// ProfileLocks serializes writes that touch the same profile.
type ProfileLocks struct {
	mu      sync.Mutex
	entries map[string]*profileLockEntry
}

type profileLockEntry struct {
	mu   sync.Mutex
	refs int
}

func NewProfileLocks() *ProfileLocks {
	return &ProfileLocks{entries: make(map[string]*profileLockEntry)}
}

// Lock blocks until profileID is free and returns the matching unlock func.
func (locks *ProfileLocks) Lock(profileID string) func() {
	locks.mu.Lock()
	entry, ok := locks.entries[profileID]
	if !ok {
		entry = &profileLockEntry{}
		locks.entries[profileID] = entry
	}
	entry.refs++
	locks.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		locks.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(locks.entries, profileID)
		}
		locks.mu.Unlock()
	}
}

func (locks *ProfileLocks) held() int {
	locks.mu.Lock()
	defer locks.mu.Unlock()
	return len(locks.entries)
}
