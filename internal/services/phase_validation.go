package services

import "github.com/terraincognita07/phased/internal/models"

func IsValidCycleLength(length int) bool {
	return length >= models.MinCycleLength && length <= models.MaxCycleLength
}

func IsValidCycleDay(day int, cycleLength int) bool {
	return day >= 1 && day <= cycleLength
}

// IsValidBleedingLength allows 1..min(10, cycleLength/2) days.
func IsValidBleedingLength(length int, cycleLength int) bool {
	return length >= 1 && length <= models.MaxBleedingLength && 2*length <= cycleLength
}
