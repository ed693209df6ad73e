package models

import "time"

const (
	DigestionPoor   = "poor"
	DigestionNormal = "normal"
	DigestionGood   = "good"
)

const (
	FlowNone     = "none"
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

const (
	IntensityLight    = "light"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
)

type SleepEntry struct {
	Hours   float64 `gorm:"column:hours;not null;default:0" json:"hours" validate:"min=0,max=24"`
	Quality string  `gorm:"column:quality;not null;default:''" json:"quality" validate:"omitempty,oneof=poor fair good excellent"`
}

// DaySymptoms is a partial record; nil fields were not reported that day.
type DaySymptoms struct {
	Pain             *int    `json:"pain,omitempty" validate:"omitempty,min=1,max=10"`
	Bloating         *int    `json:"bloating,omitempty" validate:"omitempty,min=1,max=10"`
	BreastTenderness *int    `json:"breast_tenderness,omitempty" validate:"omitempty,min=1,max=10"`
	Headache         *int    `json:"headache,omitempty" validate:"omitempty,min=1,max=10"`
	Digestion        *string `json:"digestion,omitempty" validate:"omitempty,oneof=poor normal good"`
	Bleeding         *string `json:"bleeding,omitempty" validate:"omitempty,oneof=none spotting light medium heavy"`
}

type TrainingEntry struct {
	Type      string `json:"type" validate:"oneof=none cardio strength mixed"`
	Intensity string `json:"intensity" validate:"oneof=light moderate high"`
	Duration  *int   `json:"duration,omitempty" validate:"omitempty,min=0,max=1440"`
}

type DayLog struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	ProfileID string         `gorm:"not null;uniqueIndex:uidx_profile_date" json:"-"`
	Date      time.Time      `gorm:"type:date;not null;uniqueIndex:uidx_profile_date" json:"date"`
	CycleDay  int            `gorm:"not null;default:0" json:"cycle_day"`
	Mood      int            `gorm:"not null" json:"mood" validate:"min=1,max=10"`
	MoodTags  []string       `gorm:"serializer:json" json:"mood_tags"`
	Energy    int            `gorm:"not null" json:"energy" validate:"min=1,max=10"`
	Sleep     SleepEntry     `gorm:"embedded;embeddedPrefix:sleep_" json:"sleep"`
	Stress    int            `gorm:"not null" json:"stress" validate:"min=1,max=10"`
	Symptoms  DaySymptoms    `gorm:"serializer:json" json:"symptoms"`
	Training  *TrainingEntry `gorm:"serializer:json" json:"training,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}
