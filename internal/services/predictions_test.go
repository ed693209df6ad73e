package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/terraincognita07/phased/internal/models"
)

func baseProfile() models.Profile {
	return models.Profile{
		CycleLength:        28,
		BleedingLength:     5,
		BleedingIntensity:  models.BleedingMedium,
		PMSIntensity:       models.PMSMild,
		TrainingPreference: models.TrainingMixed,
	}
}

func TestPhaseGuidanceTableIsContiguous(t *testing.T) {
	t.Parallel()

	expectedMin := -14
	for _, row := range phaseGuidanceTable {
		if row.minRelativeDay != expectedMin {
			t.Fatalf("expected range to start at %d, got %d", expectedMin, row.minRelativeDay)
		}
		if row.maxRelativeDay < row.minRelativeDay {
			t.Fatalf("empty range [%d,%d]", row.minRelativeDay, row.maxRelativeDay)
		}
		expectedMin = row.maxRelativeDay + 1
	}
	if expectedMin != 14 {
		t.Fatalf("expected table to end at 13, ends at %d", expectedMin-1)
	}
	if len(phaseGuidanceTable) != 7 {
		t.Fatalf("expected seven ranges, got %d", len(phaseGuidanceTable))
	}
}

func TestPredictOutsideTableReturnsNeutralPayload(t *testing.T) {
	t.Parallel()

	generator := NewPredictionGenerator(nil)
	for _, relativeDay := range []int{-20, -15, 14, 30} {
		got := generator.Predict(relativeDay, baseProfile(), nil)
		if got.PhysicalEnergy != "medium" || got.EmotionalState != "Neutral" {
			t.Fatalf("rd %d: expected neutral payload, got %+v", relativeDay, got)
		}
		if got.Risks == nil || len(got.Risks) != 0 {
			t.Fatalf("rd %d: expected empty non-nil risks, got %#v", relativeDay, got.Risks)
		}
	}
}

func TestPredictUsesTableRow(t *testing.T) {
	t.Parallel()

	got := NewPredictionGenerator(nil).Predict(0, baseProfile(), nil)
	if got.SocialEnergy != "Very high" {
		t.Fatalf("expected ovulatory social energy, got %q", got.SocialEnergy)
	}
	if got.Training.Notes != "Watch for joint stability - warm up thoroughly" {
		t.Fatalf("unexpected training notes %q", got.Training.Notes)
	}
	if got.Work.Avoid == nil {
		t.Fatal("expected avoid list to be non-nil")
	}
}

func TestPredictStrongPMSNote(t *testing.T) {
	t.Parallel()

	profile := baseProfile()
	profile.PMSIntensity = models.PMSStrong
	generator := NewPredictionGenerator(nil)

	late := generator.Predict(12, profile, nil)
	if !strings.HasSuffix(late.EmotionalState, StrongPMSNote) {
		t.Fatalf("expected strong PMS note at rd 12, got %q", late.EmotionalState)
	}
	if late.EmotionalState != "Greater emotional variability for many "+StrongPMSNote {
		t.Fatalf("unexpected emotional state %q", late.EmotionalState)
	}
	if late.Cognition != "Difficulty concentrating if PMS present "+StrongPMSNote {
		t.Fatalf("unexpected cognition %q", late.Cognition)
	}
	if late.SelfPerception != "More self-critical "+StrongPMSNote {
		t.Fatalf("unexpected self perception %q", late.SelfPerception)
	}

	ovulatory := generator.Predict(0, profile, nil)
	for _, text := range []string{ovulatory.EmotionalState, ovulatory.Cognition, ovulatory.SelfPerception} {
		if strings.Contains(text, StrongPMSNote) {
			t.Fatalf("expected no strong PMS note at rd 0, got %q", text)
		}
	}
}

func TestPredictPersonalizationRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		relativeDay int
		mutate      func(*models.Profile)
		check       func(t *testing.T, got DayPredictions)
	}{
		{
			name:        "anxiety from rd 8",
			relativeDay: 8,
			mutate:      func(profile *models.Profile) { profile.Symptoms.Anxiety = true },
			check: func(t *testing.T, got DayPredictions) {
				if got.EmotionalState != "Mild irritability possible "+AnxietyNote {
					t.Fatalf("unexpected emotional state %q", got.EmotionalState)
				}
				if got.Cognition != "Slower if sleep is poor "+AnxietyNote {
					t.Fatalf("unexpected cognition %q", got.Cognition)
				}
				if got.SelfPerception != "More bloating and body sensitivity "+AnxietyNote {
					t.Fatalf("unexpected self perception %q", got.SelfPerception)
				}
			},
		},
		{
			name:        "anxiety not before rd 8",
			relativeDay: 7,
			mutate:      func(profile *models.Profile) { profile.Symptoms.Anxiety = true },
			check: func(t *testing.T, got DayPredictions) {
				if strings.Contains(got.EmotionalState+got.Cognition+got.SelfPerception, AnxietyNote) {
					t.Fatalf("unexpected anxiety note in %+v", got)
				}
			},
		},
		{
			name:        "strength replaces first cardio",
			relativeDay: -12,
			mutate:      func(profile *models.Profile) { profile.TrainingPreference = models.TrainingStrength },
			check: func(t *testing.T, got DayPredictions) {
				expected := "Light strength work with focus on technique, Zone 2 strength-focused work (short duration)"
				if got.Training.HighEnergy != expected {
					t.Fatalf("expected %q, got %q", expected, got.Training.HighEnergy)
				}
				if got.Training.LowEnergy != "Gentle mobility, walking, restorative yoga" {
					t.Fatalf("expected low energy untouched, got %q", got.Training.LowEnergy)
				}
			},
		},
		{
			name:        "heavy flow rest during menstrual range",
			relativeDay: -10,
			mutate:      func(profile *models.Profile) { profile.BleedingIntensity = models.BleedingHeavy },
			check: func(t *testing.T, got DayPredictions) {
				expected := "Listen to your body carefully during menstruation " + HeavyFlowRestNote
				if got.Training.Notes != expected {
					t.Fatalf("expected %q, got %q", expected, got.Training.Notes)
				}
			},
		},
		{
			name:        "heavy flow ignored after menstrual range",
			relativeDay: -9,
			mutate:      func(profile *models.Profile) { profile.BleedingIntensity = models.BleedingHeavy },
			check: func(t *testing.T, got DayPredictions) {
				if strings.Contains(got.Training.Notes, HeavyFlowRestNote) {
					t.Fatalf("unexpected rest note %q", got.Training.Notes)
				}
			},
		},
		{
			name:        "heat sensitivity from rd 2",
			relativeDay: 2,
			mutate:      func(profile *models.Profile) { profile.HeatSensitive = true },
			check: func(t *testing.T, got DayPredictions) {
				if !strings.HasSuffix(got.Training.Notes, HeatSensitivityNote) {
					t.Fatalf("expected hydration note, got %q", got.Training.Notes)
				}
			},
		},
		{
			name:        "headache risk from rd 11",
			relativeDay: 11,
			mutate:      func(profile *models.Profile) { profile.Symptoms.Headache = true },
			check: func(t *testing.T, got DayPredictions) {
				expected := []string{"Significant PMS or PMDD symptoms if severe", "Low frustration tolerance", HeadacheRisk}
				if !reflect.DeepEqual(got.Risks, expected) {
					t.Fatalf("expected %v, got %v", expected, got.Risks)
				}
			},
		},
		{
			name:        "digestive risk early",
			relativeDay: -14,
			mutate:      func(profile *models.Profile) { profile.Symptoms.DigestiveIssues = true },
			check: func(t *testing.T, got DayPredictions) {
				if got.Risks[len(got.Risks)-1] != DigestiveRisk {
					t.Fatalf("expected digestive risk, got %v", got.Risks)
				}
			},
		},
		{
			name:        "digestive risk absent mid cycle",
			relativeDay: 0,
			mutate:      func(profile *models.Profile) { profile.Symptoms.DigestiveIssues = true },
			check: func(t *testing.T, got DayPredictions) {
				for _, risk := range got.Risks {
					if risk == DigestiveRisk {
						t.Fatalf("unexpected digestive risk in %v", got.Risks)
					}
				}
			},
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			profile := baseProfile()
			testCase.mutate(&profile)
			testCase.check(t, NewPredictionGenerator(nil).Predict(testCase.relativeDay, profile, nil))
		})
	}
}

func TestPredictNeverMutatesTable(t *testing.T) {
	t.Parallel()

	profile := baseProfile()
	profile.Symptoms.Headache = true
	profile.Symptoms.DigestiveIssues = true
	profile.HeatSensitive = true

	generator := NewPredictionGenerator(nil)
	first := generator.Predict(12, profile, nil)
	first.Risks[0] = "changed"
	first.Work.Ideal[0] = "changed"

	second := generator.Predict(12, profile, nil)
	if second.Risks[0] != "Significant PMS or PMDD symptoms if severe" {
		t.Fatalf("expected table risks untouched, got %q", second.Risks[0])
	}
	if second.Work.Ideal[0] != "Simple tasks" {
		t.Fatalf("expected table work untouched, got %q", second.Work.Ideal[0])
	}
	if len(phaseGuidanceTable[6].risks) != 2 {
		t.Fatalf("expected base risks to keep two entries, got %d", len(phaseGuidanceTable[6].risks))
	}
	if !reflect.DeepEqual(generator.Predict(12, profile, nil), generator.Predict(12, profile, nil)) {
		t.Fatal("expected identical predictions for identical input")
	}
}

type recordingEnergy struct {
	calls int
}

func (adjuster *recordingEnergy) AdjustEnergy(base string, _ models.Profile, recentLogs []models.DayLog) string {
	adjuster.calls++
	if len(recentLogs) > 0 {
		return base + " (adjusted)"
	}
	return base
}

func TestPredictRoutesEnergyThroughAdjuster(t *testing.T) {
	t.Parallel()

	adjuster := &recordingEnergy{}
	generator := NewPredictionGenerator(adjuster)

	got := generator.Predict(-4, baseProfile(), []models.DayLog{{Mood: 5}})
	if adjuster.calls != 3 {
		t.Fatalf("expected three energy adjustments, got %d", adjuster.calls)
	}
	if got.PhysicalEnergy != "High (adjusted)" || got.Libido != "High and rising (adjusted)" {
		t.Fatalf("expected adjusted energies, got %q and %q", got.PhysicalEnergy, got.Libido)
	}

	passthrough := NewPredictionGenerator(nil).Predict(-4, baseProfile(), []models.DayLog{{Mood: 5}})
	if passthrough.PhysicalEnergy != "High" {
		t.Fatalf("expected passthrough energy, got %q", passthrough.PhysicalEnergy)
	}
}
