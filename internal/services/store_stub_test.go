package services

import (
	"sort"
	"sync"
	"time"

	"github.com/terraincognita07/phased/internal/models"
)

type memoryStoreStub struct {
	mu       sync.Mutex
	profiles map[string]models.Profile
	logs     []models.DayLog
	nextID   uint

	listErr   error
	findErr   error
	saveErr   error
	deleteErr error
	logsErr   error
}

func newMemoryStoreStub() *memoryStoreStub {
	return &memoryStoreStub{profiles: make(map[string]models.Profile), nextID: 1}
}

func (stub *memoryStoreStub) List() ([]models.Profile, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	profiles := make([]models.Profile, 0, len(stub.profiles))
	for _, profile := range stub.profiles {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

func (stub *memoryStoreStub) FindByID(profileID string) (models.Profile, bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.findErr != nil {
		return models.Profile{}, false, stub.findErr
	}
	profile, ok := stub.profiles[profileID]
	return profile, ok, nil
}

func (stub *memoryStoreStub) Create(profile *models.Profile) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.profiles[profile.ID] = *profile
	return nil
}

func (stub *memoryStoreStub) Save(profile *models.Profile) error {
	return stub.Create(profile)
}

func (stub *memoryStoreStub) DeleteWithLogs(profileID string) (bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.deleteErr != nil {
		return false, stub.deleteErr
	}
	if _, ok := stub.profiles[profileID]; !ok {
		return false, nil
	}
	delete(stub.profiles, profileID)
	kept := stub.logs[:0]
	for _, entry := range stub.logs {
		if entry.ProfileID != profileID {
			kept = append(kept, entry)
		}
	}
	stub.logs = kept
	return true, nil
}

func (stub *memoryStoreStub) ListByProfile(profileID string) ([]models.DayLog, error) {
	return stub.ListByProfileRange(profileID, nil, nil)
}

func (stub *memoryStoreStub) ListByProfileRange(profileID string, fromStart *time.Time, toEnd *time.Time) ([]models.DayLog, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.logsErr != nil {
		return nil, stub.logsErr
	}
	logs := make([]models.DayLog, 0)
	for _, entry := range stub.logs {
		if entry.ProfileID != profileID {
			continue
		}
		if fromStart != nil && entry.Date.Before(*fromStart) {
			continue
		}
		if toEnd != nil && !entry.Date.Before(*toEnd) {
			continue
		}
		logs = append(logs, entry)
	}
	sort.Slice(logs, func(i, j int) bool {
		if logs[i].Date.Equal(logs[j].Date) {
			return logs[i].ID < logs[j].ID
		}
		return logs[i].Date.Before(logs[j].Date)
	})
	return logs, nil
}

func (stub *memoryStoreStub) ReplaceDay(entry *models.DayLog, dayStart time.Time, dayEnd time.Time) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	if stub.saveErr != nil {
		return stub.saveErr
	}
	kept := stub.logs[:0]
	for _, existing := range stub.logs {
		sameDay := existing.ProfileID == entry.ProfileID && !existing.Date.Before(dayStart) && existing.Date.Before(dayEnd)
		if !sameDay {
			kept = append(kept, existing)
		}
	}
	entry.ID = stub.nextID
	stub.nextID++
	stub.logs = append(kept, *entry)
	return nil
}
