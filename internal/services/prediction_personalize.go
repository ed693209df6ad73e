package services

import (
	"strings"

	"github.com/terraincognita07/phased/internal/models"
)

const (
	StrongPMSNote        = "(Note: Your profile indicates strong PMS - symptoms may be more pronounced.)"
	AnxietyNote          = "Anxiety levels may fluctuate more during this phase."
	HeavyFlowRestNote    = "Consider extra rest given your typical heavy flow."
	HeatSensitivityNote  = "Stay well-hydrated and consider cooler training environments."
	HeadacheRisk         = "Headache or migraine more likely"
	DigestiveRisk        = "Digestive sensitivity"
	strengthSubstitution = "strength-focused work"
)

// personalizeText appends the PMS and anxiety notes to one of the free-text descriptions.
func personalizeText(base string, profile models.Profile, relativeDay int) string {
	text := base
	if profile.PMSIntensity == models.PMSStrong && relativeDay >= 11 {
		text = appendSentence(text, StrongPMSNote)
	}
	if profile.Symptoms.Anxiety && relativeDay >= 8 {
		text = appendSentence(text, AnxietyNote)
	}
	return text
}

func personalizeTraining(base TrainingGuidance, profile models.Profile, relativeDay int) TrainingGuidance {
	training := base
	if profile.TrainingPreference == models.TrainingStrength {
		training.HighEnergy = strings.Replace(training.HighEnergy, "cardio", strengthSubstitution, 1)
	}
	if profile.BleedingIntensity == models.BleedingHeavy && relativeDay >= -14 && relativeDay <= -10 {
		training.Notes = appendSentence(training.Notes, HeavyFlowRestNote)
	}
	if profile.HeatSensitive && relativeDay >= 2 {
		training.Notes = appendSentence(training.Notes, HeatSensitivityNote)
	}
	return training
}

func personalizeRisks(base []string, profile models.Profile, relativeDay int) []string {
	risks := make([]string, 0, len(base)+2)
	risks = append(risks, base...)
	if profile.Symptoms.Headache && relativeDay >= 11 {
		risks = append(risks, HeadacheRisk)
	}
	if profile.Symptoms.DigestiveIssues && (relativeDay <= -10 || relativeDay >= 11) {
		risks = append(risks, DigestiveRisk)
	}
	return risks
}

func appendSentence(text string, sentence string) string {
	if strings.TrimSpace(text) == "" {
		return sentence
	}
	return text + " " + sentence
}
