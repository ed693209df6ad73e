package db

import (
	"testing"
	"time"

	"github.com/terraincognita07/phased/internal/models"
)

func TestProfileRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repositories := NewRepositories(openTestDatabase(t))
	profile := testProfile("a1", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	profile.Symptoms.Anxiety = true

	if err := repositories.Profiles.Create(&profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	stored, found, err := repositories.Profiles.FindByID("a1")
	if err != nil {
		t.Fatalf("find profile: %v", err)
	}
	if !found {
		t.Fatal("expected profile to be found")
	}
	if !stored.Symptoms.Anxiety {
		t.Fatal("expected symptom flags to survive storage")
	}
	if stored.CycleLength != 28 || stored.AverageSleep != 7.5 {
		t.Fatalf("unexpected stored profile: %+v", stored)
	}

	_, found, err = repositories.Profiles.FindByID("missing")
	if err != nil {
		t.Fatalf("find missing profile: %v", err)
	}
	if found {
		t.Fatal("expected missing profile to be reported as not found")
	}
}

func TestProfileRepositoryDeleteWithLogsCascades(t *testing.T) {
	t.Parallel()

	repositories := NewRepositories(openTestDatabase(t))
	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	profile := testProfile("a1", day)
	other := testProfile("b2", day)
	for _, p := range []*models.Profile{&profile, &other} {
		if err := repositories.Profiles.Create(p); err != nil {
			t.Fatalf("create profile: %v", err)
		}
	}
	for _, profileID := range []string{"a1", "b2"} {
		entry := testDayLog(profileID, day)
		if err := repositories.DayLogs.ReplaceDay(&entry, day, day.AddDate(0, 0, 1)); err != nil {
			t.Fatalf("save log: %v", err)
		}
	}

	deleted, err := repositories.Profiles.DeleteWithLogs("a1")
	if err != nil {
		t.Fatalf("delete profile: %v", err)
	}
	if !deleted {
		t.Fatal("expected profile to be deleted")
	}

	logs, err := repositories.DayLogs.ListByProfile("a1")
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected logs of deleted profile to be gone, got %d", len(logs))
	}
	logs, err = repositories.DayLogs.ListByProfile("b2")
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected other profile logs to remain, got %d", len(logs))
	}

	deleted, err = repositories.Profiles.DeleteWithLogs("a1")
	if err != nil {
		t.Fatalf("delete missing profile: %v", err)
	}
	if deleted {
		t.Fatal("expected second delete to report nothing removed")
	}
}

func TestDayLogRepositoryReplaceDayKeepsOneEntryPerDay(t *testing.T) {
	t.Parallel()

	repositories := NewRepositories(openTestDatabase(t))
	day := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	profile := testProfile("a1", day)
	if err := repositories.Profiles.Create(&profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	first := testDayLog("a1", day)
	first.Mood = 3
	if err := repositories.DayLogs.ReplaceDay(&first, day, day.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("save first log: %v", err)
	}
	second := testDayLog("a1", day)
	second.Mood = 9
	if err := repositories.DayLogs.ReplaceDay(&second, day, day.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("save second log: %v", err)
	}

	logs, err := repositories.DayLogs.ListByProfile("a1")
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one log for the day, got %d", len(logs))
	}
	if logs[0].Mood != 9 {
		t.Fatalf("expected latest mood 9, got %d", logs[0].Mood)
	}
}

func TestDayLogRepositoryListByProfileRange(t *testing.T) {
	t.Parallel()

	repositories := NewRepositories(openTestDatabase(t))
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	profile := testProfile("a1", start)
	if err := repositories.Profiles.Create(&profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	for offset := 0; offset < 5; offset++ {
		day := start.AddDate(0, 0, offset)
		entry := testDayLog("a1", day)
		if err := repositories.DayLogs.ReplaceDay(&entry, day, day.AddDate(0, 0, 1)); err != nil {
			t.Fatalf("save log: %v", err)
		}
	}

	from := start.AddDate(0, 0, 1)
	to := start.AddDate(0, 0, 4)
	cases := []struct {
		name     string
		from     *time.Time
		to       *time.Time
		expected int
	}{
		{name: "unbounded", expected: 5},
		{name: "from only", from: &from, expected: 4},
		{name: "to only", to: &to, expected: 4},
		{name: "both bounds", from: &from, to: &to, expected: 3},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			logs, err := repositories.DayLogs.ListByProfileRange("a1", testCase.from, testCase.to)
			if err != nil {
				t.Fatalf("list range: %v", err)
			}
			if len(logs) != testCase.expected {
				t.Fatalf("expected %d logs, got %d", testCase.expected, len(logs))
			}
			for index := 1; index < len(logs); index++ {
				if logs[index].Date.Before(logs[index-1].Date) {
					t.Fatal("expected logs ordered by date ascending")
				}
			}
		})
	}
}

func testProfile(id string, lastPeriod time.Time) models.Profile {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	return models.Profile{
		ID:                 id,
		Name:               "Test",
		CycleLength:        28,
		BleedingLength:     5,
		BleedingIntensity:  models.BleedingMedium,
		PMSIntensity:       models.PMSMild,
		AverageSleep:       7.5,
		SleepQuality:       models.SleepGood,
		StressLevel:        models.StressLow,
		TrainingPreference: models.TrainingMixed,
		TrainingFrequency:  3,
		LastPeriodDate:     lastPeriod,
		PasswordHash:       "hash:salt",
		CreatedAt:          now,
		LastUpdated:        now,
	}
}

func testDayLog(profileID string, day time.Time) models.DayLog {
	return models.DayLog{
		ProfileID: profileID,
		Date:      day,
		CycleDay:  1,
		Mood:      5,
		Energy:    5,
		Stress:    5,
		Sleep:     models.SleepEntry{Hours: 7, Quality: models.SleepGood},
	}
}
