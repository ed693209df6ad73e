package services

import "github.com/terraincognita07/phased/internal/models"

type TrainingGuidance struct {
	HighEnergy string `json:"high_energy"`
	LowEnergy  string `json:"low_energy"`
	Notes      string `json:"notes,omitempty"`
}

type WorkGuidance struct {
	Ideal []string `json:"ideal"`
	Avoid []string `json:"avoid"`
}

type RelationshipGuidance struct {
	Needs         string `json:"needs"`
	Communication string `json:"communication"`
}

// DayPredictions is the guidance payload for one relative day.
type DayPredictions struct {
	PhysicalEnergy string               `json:"physical_energy"`
	SocialEnergy   string               `json:"social_energy"`
	EmotionalState string               `json:"emotional_state"`
	Cognition      string               `json:"cognition"`
	SelfPerception string               `json:"self_perception"`
	Libido         string               `json:"libido"`
	Training       TrainingGuidance     `json:"training"`
	Work           WorkGuidance         `json:"work"`
	Relationships  RelationshipGuidance `json:"relationships"`
	Risks          []string             `json:"risks"`
}

// EnergyAdjuster may shift an energy category using recent logs.
type EnergyAdjuster interface {
	AdjustEnergy(base string, profile models.Profile, recentLogs []models.DayLog) string
}

// PassthroughEnergy keeps the base energy category unchanged.
type PassthroughEnergy struct{}

func (PassthroughEnergy) AdjustEnergy(base string, _ models.Profile, _ []models.DayLog) string {
	return base
}

type PredictionGenerator struct {
	energy EnergyAdjuster
}

func NewPredictionGenerator(energy EnergyAdjuster) *PredictionGenerator {
	if energy == nil {
		energy = PassthroughEnergy{}
	}
	return &PredictionGenerator{energy: energy}
}

// Predict builds the guidance for relativeDay. Days outside the table get a neutral payload.
func (generator *PredictionGenerator) Predict(relativeDay int, profile models.Profile, recentLogs []models.DayLog) DayPredictions {
	row, ok := lookupPhaseGuidance(relativeDay)
	if !ok {
		return defaultPredictions()
	}

	energy := generator.energy
	if energy == nil {
		energy = PassthroughEnergy{}
	}

	return DayPredictions{
		PhysicalEnergy: energy.AdjustEnergy(row.physicalEnergy, profile, recentLogs),
		SocialEnergy:   energy.AdjustEnergy(row.socialEnergy, profile, recentLogs),
		EmotionalState: personalizeText(row.emotionalState, profile, relativeDay),
		Cognition:      personalizeText(row.cognition, profile, relativeDay),
		SelfPerception: personalizeText(row.selfPerception, profile, relativeDay),
		Libido:         energy.AdjustEnergy(row.libido, profile, recentLogs),
		Training:       personalizeTraining(row.training, profile, relativeDay),
		Work: WorkGuidance{
			Ideal: cloneStrings(row.work.Ideal),
			Avoid: cloneStrings(row.work.Avoid),
		},
		Relationships: row.relationships,
		Risks:         personalizeRisks(row.risks, profile, relativeDay),
	}
}

func cloneStrings(values []string) []string {
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}
