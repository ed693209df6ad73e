package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/phased/internal/models"
)

// ProfileInput carries the questionnaire answers used to create a profile.
type ProfileInput struct {
	Name               string              `json:"name" validate:"max=80"`
	CycleLength        int                 `json:"cycle_length" validate:"min=25,max=35"`
	BleedingLength     int                 `json:"bleeding_length" validate:"min=1,max=10"`
	BleedingIntensity  string              `json:"bleeding_intensity" validate:"oneof=light medium heavy"`
	PMSIntensity       string              `json:"pms_intensity" validate:"oneof=none mild moderate strong"`
	HasOvulationSigns  bool                `json:"has_ovulation_signs"`
	AverageSleep       float64             `json:"average_sleep" validate:"min=4,max=10,half_step"`
	SleepQuality       string              `json:"sleep_quality" validate:"oneof=poor fair good excellent"`
	StressLevel        string              `json:"stress_level" validate:"oneof=low medium high"`
	TrainingPreference string              `json:"training_preference" validate:"oneof=cardio strength mixed minimal"`
	TrainingFrequency  int                 `json:"training_frequency" validate:"min=0,max=7"`
	HeatSensitive      bool                `json:"heat_sensitive"`
	Symptoms           models.SymptomFlags `json:"symptoms"`
	LastPeriodDate     time.Time           `json:"last_period_date"`
}

// ProfileUpdate is a partial edit; nil fields keep their stored value.
type ProfileUpdate struct {
	Name               *string              `json:"name,omitempty"`
	CycleLength        *int                 `json:"cycle_length,omitempty"`
	BleedingLength     *int                 `json:"bleeding_length,omitempty"`
	BleedingIntensity  *string              `json:"bleeding_intensity,omitempty"`
	PMSIntensity       *string              `json:"pms_intensity,omitempty"`
	HasOvulationSigns  *bool                `json:"has_ovulation_signs,omitempty"`
	AverageSleep       *float64             `json:"average_sleep,omitempty"`
	SleepQuality       *string              `json:"sleep_quality,omitempty"`
	StressLevel        *string              `json:"stress_level,omitempty"`
	TrainingPreference *string              `json:"training_preference,omitempty"`
	TrainingFrequency  *int                 `json:"training_frequency,omitempty"`
	HeatSensitive      *bool                `json:"heat_sensitive,omitempty"`
	Symptoms           *models.SymptomFlags `json:"symptoms,omitempty"`
	LastPeriodDate     *time.Time           `json:"last_period_date,omitempty"`
}

func ValidateProfileInput(input ProfileInput) error {
	if err := validateStruct(input); err != nil {
		return err
	}
	if 2*input.BleedingLength > input.CycleLength {
		return &ValidationError{Field: "bleeding_length", Rule: "max_half_cycle"}
	}
	if input.LastPeriodDate.IsZero() {
		return &ValidationError{Field: "last_period_date", Rule: "required"}
	}
	return nil
}

func normalizeProfileInput(input ProfileInput) ProfileInput {
	input.Name = strings.TrimSpace(input.Name)
	input.BleedingIntensity = strings.ToLower(strings.TrimSpace(input.BleedingIntensity))
	input.PMSIntensity = strings.ToLower(strings.TrimSpace(input.PMSIntensity))
	input.SleepQuality = strings.ToLower(strings.TrimSpace(input.SleepQuality))
	input.StressLevel = strings.ToLower(strings.TrimSpace(input.StressLevel))
	input.TrainingPreference = strings.ToLower(strings.TrimSpace(input.TrainingPreference))
	return input
}

func profileInputFromModel(profile models.Profile) ProfileInput {
	return ProfileInput{
		Name:               profile.Name,
		CycleLength:        profile.CycleLength,
		BleedingLength:     profile.BleedingLength,
		BleedingIntensity:  profile.BleedingIntensity,
		PMSIntensity:       profile.PMSIntensity,
		HasOvulationSigns:  profile.HasOvulationSigns,
		AverageSleep:       profile.AverageSleep,
		SleepQuality:       profile.SleepQuality,
		StressLevel:        profile.StressLevel,
		TrainingPreference: profile.TrainingPreference,
		TrainingFrequency:  profile.TrainingFrequency,
		HeatSensitive:      profile.HeatSensitive,
		Symptoms:           profile.Symptoms,
		LastPeriodDate:     profile.LastPeriodDate,
	}
}

func (input ProfileInput) applyTo(profile *models.Profile) {
	profile.Name = input.Name
	profile.CycleLength = input.CycleLength
	profile.BleedingLength = input.BleedingLength
	profile.BleedingIntensity = input.BleedingIntensity
	profile.PMSIntensity = input.PMSIntensity
	profile.HasOvulationSigns = input.HasOvulationSigns
	profile.AverageSleep = input.AverageSleep
	profile.SleepQuality = input.SleepQuality
	profile.StressLevel = input.StressLevel
	profile.TrainingPreference = input.TrainingPreference
	profile.TrainingFrequency = input.TrainingFrequency
	profile.HeatSensitive = input.HeatSensitive
	profile.Symptoms = input.Symptoms
	profile.LastPeriodDate = input.LastPeriodDate
}

func (update ProfileUpdate) mergeInto(input ProfileInput) ProfileInput {
	if update.Name != nil {
		input.Name = *update.Name
	}
	if update.CycleLength != nil {
		input.CycleLength = *update.CycleLength
	}
	if update.BleedingLength != nil {
		input.BleedingLength = *update.BleedingLength
	}
	if update.BleedingIntensity != nil {
		input.BleedingIntensity = *update.BleedingIntensity
	}
	if update.PMSIntensity != nil {
		input.PMSIntensity = *update.PMSIntensity
	}
	if update.HasOvulationSigns != nil {
		input.HasOvulationSigns = *update.HasOvulationSigns
	}
	if update.AverageSleep != nil {
		input.AverageSleep = *update.AverageSleep
	}
	if update.SleepQuality != nil {
		input.SleepQuality = *update.SleepQuality
	}
	if update.StressLevel != nil {
		input.StressLevel = *update.StressLevel
	}
	if update.TrainingPreference != nil {
		input.TrainingPreference = *update.TrainingPreference
	}
	if update.TrainingFrequency != nil {
		input.TrainingFrequency = *update.TrainingFrequency
	}
	if update.HeatSensitive != nil {
		input.HeatSensitive = *update.HeatSensitive
	}
	if update.Symptoms != nil {
		input.Symptoms = *update.Symptoms
	}
	if update.LastPeriodDate != nil {
		input.LastPeriodDate = *update.LastPeriodDate
	}
	return input
}
