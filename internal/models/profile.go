package models

import "time"

const (
	DefaultCycleLength    = 28
	DefaultBleedingLength = 5

	MinCycleLength    = 25
	MaxCycleLength    = 35
	MaxBleedingLength = 10
)

const (
	BleedingLight  = "light"
	BleedingMedium = "medium"
	BleedingHeavy  = "heavy"
)

const (
	PMSNone     = "none"
	PMSMild     = "mild"
	PMSModerate = "moderate"
	PMSStrong   = "strong"
)

const (
	SleepPoor      = "poor"
	SleepFair      = "fair"
	SleepGood      = "good"
	SleepExcellent = "excellent"
)

const (
	StressLow    = "low"
	StressMedium = "medium"
	StressHigh   = "high"
)

const (
	TrainingCardio   = "cardio"
	TrainingStrength = "strength"
	TrainingMixed    = "mixed"
	TrainingMinimal  = "minimal"
)

// SymptomFlags are the recurring symptoms a profile reports during onboarding.
type SymptomFlags struct {
	Cramps            bool `json:"cramps"`
	Bloating          bool `json:"bloating"`
	Acne              bool `json:"acne"`
	Headache          bool `json:"headache"`
	BreastTenderness  bool `json:"breast_tenderness"`
	DigestiveIssues   bool `json:"digestive_issues"`
	Anxiety           bool `json:"anxiety"`
	LowMood           bool `json:"low_mood"`
	LibidoFluctuation bool `json:"libido_fluctuation"`
}

type Profile struct {
	ID                 string       `gorm:"primaryKey" json:"id"`
	Name               string       `gorm:"not null;default:''" json:"name"`
	CycleLength        int          `gorm:"not null" json:"cycle_length"`
	BleedingLength     int          `gorm:"not null" json:"bleeding_length"`
	BleedingIntensity  string       `gorm:"not null" json:"bleeding_intensity"`
	PMSIntensity       string       `gorm:"column:pms_intensity;not null" json:"pms_intensity"`
	HasOvulationSigns  bool         `gorm:"not null;default:false" json:"has_ovulation_signs"`
	AverageSleep       float64      `gorm:"not null" json:"average_sleep"`
	SleepQuality       string       `gorm:"not null" json:"sleep_quality"`
	StressLevel        string       `gorm:"not null" json:"stress_level"`
	TrainingPreference string       `gorm:"not null" json:"training_preference"`
	TrainingFrequency  int          `gorm:"not null" json:"training_frequency"`
	HeatSensitive      bool         `gorm:"not null;default:false" json:"heat_sensitive"`
	Symptoms           SymptomFlags `gorm:"serializer:json" json:"symptoms"`
	LastPeriodDate     time.Time    `gorm:"type:date;not null" json:"last_period_date"`
	PasswordHash       string       `gorm:"not null" json:"password_hash,omitempty"`
	EncryptedData      string       `json:"encrypted_data,omitempty"`
	CreatedAt          time.Time    `gorm:"not null" json:"created_at"`
	LastUpdated        time.Time    `gorm:"not null" json:"last_updated"`
}

// SensitiveProfileData is the subset of a profile sealed into EncryptedData.
type SensitiveProfileData struct {
	Symptoms     SymptomFlags `json:"symptoms"`
	PMSIntensity string       `json:"pms_intensity"`
}

func (profile Profile) SensitiveData() SensitiveProfileData {
	return SensitiveProfileData{
		Symptoms:     profile.Symptoms,
		PMSIntensity: profile.PMSIntensity,
	}
}

// WithSensitiveData returns a copy of the profile with the decrypted subset merged over it.
func (profile Profile) WithSensitiveData(data SensitiveProfileData) Profile {
	profile.Symptoms = data.Symptoms
	if data.PMSIntensity != "" {
		profile.PMSIntensity = data.PMSIntensity
	}
	return profile
}
