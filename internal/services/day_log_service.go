package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/phased/internal/models"
	"go.uber.org/zap"
)

type DayLogRepository interface {
	ListByProfile(profileID string) ([]models.DayLog, error)
	ListByProfileRange(profileID string, fromStart *time.Time, toEnd *time.Time) ([]models.DayLog, error)
	ReplaceDay(entry *models.DayLog, dayStart time.Time, dayEnd time.Time) error
}

type DayLogProfileReader interface {
	FindByID(profileID string) (models.Profile, bool, error)
}

type DayLogService struct {
	logs     DayLogRepository
	profiles DayLogProfileReader
	locks    *ProfileLocks
	location *time.Location
	log      *zap.SugaredLogger
}

func NewDayLogService(logs DayLogRepository, profiles DayLogProfileReader, locks *ProfileLocks, location *time.Location, log *zap.SugaredLogger) *DayLogService {
	if locks == nil {
		locks = NewProfileLocks()
	}
	if location == nil {
		location = time.UTC
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &DayLogService{
		logs:     logs,
		profiles: profiles,
		locks:    locks,
		location: location,
		log:      log,
	}
}

func ValidateDayLog(entry models.DayLog) error {
	if entry.Date.IsZero() {
		return &ValidationError{Field: "date", Rule: "required"}
	}
	return validateStruct(entry)
}

// SaveLog stores entry as the only log of its calendar day, replacing any earlier one.
func (service *DayLogService) SaveLog(profileID string, entry models.DayLog) (models.DayLog, error) {
	if err := ValidateDayLog(entry); err != nil {
		return models.DayLog{}, err
	}

	unlock := service.locks.Lock(profileID)
	defer unlock()

	profile, found, err := service.profiles.FindByID(profileID)
	if err != nil {
		return models.DayLog{}, fmt.Errorf("%w: load profile: %w", ErrStorage, err)
	}
	if !found {
		return models.DayLog{}, ErrProfileNotFound
	}

	dayStart, dayEnd := DayRange(entry.Date, service.location)
	entry.ProfileID = profileID
	entry.Date = dayStart
	entry.Notes = TrimDayNotes(strings.TrimSpace(entry.Notes))
	if entry.MoodTags == nil {
		entry.MoodTags = []string{}
	}
	if entry.CycleDay == 0 {
		lastPeriod := DateAtLocation(profile.LastPeriodDate, service.location)
		entry.CycleDay = CurrentCycleDay(lastPeriod, profile.CycleLength, dayStart)
	}

	if err := service.logs.ReplaceDay(&entry, dayStart, dayEnd); err != nil {
		service.log.Errorw("save day log failed", "profile_id", profileID, "error", err)
		return models.DayLog{}, fmt.Errorf("%w: save log: %w", ErrStorage, err)
	}
	return entry, nil
}

func (service *DayLogService) GetLogs(profileID string) ([]models.DayLog, error) {
	logs, err := service.logs.ListByProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: load logs: %w", ErrStorage, err)
	}
	return logs, nil
}

// GetLogsInRange returns logs from start through end, both calendar days included.
func (service *DayLogService) GetLogsInRange(profileID string, start time.Time, end time.Time) ([]models.DayLog, error) {
	fromStart, _ := DayRange(start, service.location)
	_, toEnd := DayRange(end, service.location)
	logs, err := service.logs.ListByProfileRange(profileID, &fromStart, &toEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: load logs: %w", ErrStorage, err)
	}
	return logs, nil
}
