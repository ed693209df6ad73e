package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/phased/internal/models"
)

// RecentLogWindowDays is how far back logs still count as recent for a calendar day.
const RecentLogWindowDays = 3

type CycleDay struct {
	CycleDay      int            `json:"cycle_day"`
	RelativeDay   int            `json:"relative_day"`
	RelativeLabel string         `json:"relative_label"`
	Date          time.Time      `json:"date"`
	Phase         PhaseInfo      `json:"phase"`
	Predictions   DayPredictions `json:"predictions"`
	ActualLog     *models.DayLog `json:"actual_log,omitempty"`
}

type CycleStatus struct {
	CycleDay            int       `json:"cycle_day"`
	RelativeDay         int       `json:"relative_day"`
	RelativeLabel       string    `json:"relative_label"`
	Phase               PhaseInfo `json:"phase"`
	CycleStart          time.Time `json:"cycle_start"`
	OvulationDate       time.Time `json:"ovulation_date"`
	NextPeriodDate      time.Time `json:"next_period_date"`
	DaysUntilNextPeriod int       `json:"days_until_next_period"`
}

// GenerateCycleCalendar materializes every day of one cycle starting at startDate,
// or at the profile's last period date when startDate is nil.
func (service *ProfileService) GenerateCycleCalendar(profile models.Profile, startDate *time.Time) ([]CycleDay, error) {
	anchor := profile.LastPeriodDate
	if startDate != nil {
		anchor = *startDate
	}
	anchor = DateAtLocation(anchor, service.location)

	logs, err := service.logs.ListByProfile(profile.ID)
	if err != nil {
		service.log.Errorw("load logs for calendar failed", "profile_id", profile.ID, "error", err)
		return nil, fmt.Errorf("%w: load logs: %w", ErrStorage, err)
	}
	logDates := make([]time.Time, len(logs))
	for index, entry := range logs {
		logDates[index] = DateAtLocation(entry.Date, service.location)
	}

	calendar := make([]CycleDay, 0, profile.CycleLength)
	for day := 1; day <= profile.CycleLength; day++ {
		date := anchor.AddDate(0, 0, day-1)
		relativeDay := RelativeDay(day, profile.CycleLength)

		recent := make([]models.DayLog, 0)
		var actual *models.DayLog
		for index := range logs {
			daysBefore := CalendarDaysBetween(logDates[index], date)
			if daysBefore >= 0 && daysBefore <= RecentLogWindowDays {
				recent = append(recent, logs[index])
			}
			if daysBefore == 0 && actual == nil {
				matched := logs[index]
				actual = &matched
			}
		}

		calendar = append(calendar, CycleDay{
			CycleDay:      day,
			RelativeDay:   relativeDay,
			RelativeLabel: FormatRelativeDay(relativeDay),
			Date:          date,
			Phase:         ClassifyPhase(day, profile.CycleLength, profile.BleedingLength),
			Predictions:   service.predictions.Predict(relativeDay, profile, recent),
			ActualLog:     actual,
		})
	}
	return calendar, nil
}

// CurrentCycleStatus locates now within the profile's repeating cycle.
func (service *ProfileService) CurrentCycleStatus(profile models.Profile, now time.Time) CycleStatus {
	today := DateAtLocation(now, service.location)
	lastPeriod := DateAtLocation(profile.LastPeriodDate, service.location)

	cycleDay := CurrentCycleDay(lastPeriod, profile.CycleLength, today)
	cycleStart := today.AddDate(0, 0, -(cycleDay - 1))
	nextPeriod := NextPeriodDate(cycleStart, profile.CycleLength)
	relativeDay := RelativeDay(cycleDay, profile.CycleLength)

	return CycleStatus{
		CycleDay:            cycleDay,
		RelativeDay:         relativeDay,
		RelativeLabel:       FormatRelativeDay(relativeDay),
		Phase:               ClassifyPhase(cycleDay, profile.CycleLength, profile.BleedingLength),
		CycleStart:          cycleStart,
		OvulationDate:       cycleStart.AddDate(0, 0, OvulationDay(profile.CycleLength)-1),
		NextPeriodDate:      nextPeriod,
		DaysUntilNextPeriod: CalendarDaysBetween(today, nextPeriod),
	}
}
