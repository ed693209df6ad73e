package services

import (
	"fmt"
	"strconv"
	"time"
)

// LutealPhaseDays is the fixed distance from ovulation to the next period.
const LutealPhaseDays = 14

type PhaseName string

const (
	PhaseMenstrualEarly PhaseName = "menstrual_early"
	PhaseFollicularMid  PhaseName = "follicular_mid"
	PhaseFollicularHigh PhaseName = "follicular_high"
	PhaseOvulatory      PhaseName = "ovulatory"
	PhaseLutealEarly    PhaseName = "luteal_early"
	PhaseLutealMid      PhaseName = "luteal_mid"
	PhaseLutealLate     PhaseName = "luteal_late"
)

var AllPhaseNames = []PhaseName{
	PhaseMenstrualEarly,
	PhaseFollicularMid,
	PhaseFollicularHigh,
	PhaseOvulatory,
	PhaseLutealEarly,
	PhaseLutealMid,
	PhaseLutealLate,
}

func (name PhaseName) Valid() bool {
	switch name {
	case PhaseMenstrualEarly, PhaseFollicularMid, PhaseFollicularHigh, PhaseOvulatory,
		PhaseLutealEarly, PhaseLutealMid, PhaseLutealLate:
		return true
	default:
		return false
	}
}

// ParsePhaseName maps a stored or user supplied tag back to a PhaseName.
// Unknown tags report false so callers can fall back to a neutral value.
func ParsePhaseName(raw string) (PhaseName, bool) {
	name := PhaseName(raw)
	if !name.Valid() {
		return "", false
	}
	return name, true
}

// Season groups a phase tag into its coarse cycle segment.
func (name PhaseName) Season() string {
	switch name {
	case PhaseMenstrualEarly:
		return "menstrual"
	case PhaseFollicularMid, PhaseFollicularHigh:
		return "follicular"
	case PhaseOvulatory:
		return "ovulatory"
	case PhaseLutealEarly, PhaseLutealMid, PhaseLutealLate:
		return "luteal"
	default:
		return "unknown"
	}
}

type PhaseInfo struct {
	Name        PhaseName `json:"name"`
	DisplayName string    `json:"display_name"`
	Range       string    `json:"range"`
	IsBleeding  bool      `json:"is_bleeding"`
	IsFertile   bool      `json:"is_fertile,omitempty"`
	IsOvulation bool      `json:"is_ovulation,omitempty"`
}

func OvulationDay(cycleLength int) int {
	return cycleLength - LutealPhaseDays
}

func RelativeDay(cycleDay int, cycleLength int) int {
	return cycleDay - OvulationDay(cycleLength)
}

// ClassifyPhase partitions [1, cycleLength] into contiguous phases around the ovulation day.
// Branch order matters: each range starts right after the previous one ends. A long bleed can
// swallow the nominal start of later phases, so every end is clamped to the previous one.
func ClassifyPhase(cycleDay int, cycleLength int, bleedingLength int) PhaseInfo {
	ovulationDay := OvulationDay(cycleLength)

	if cycleDay >= 1 && cycleDay <= bleedingLength {
		return PhaseInfo{
			Name:        PhaseMenstrualEarly,
			DisplayName: "Menstrual",
			Range:       dayRangeLabel(1, bleedingLength),
			IsBleeding:  true,
		}
	}

	earlyFollicularEnd := max(bleedingLength+1, ovulationDay-9)
	if cycleDay > bleedingLength && cycleDay <= earlyFollicularEnd {
		return PhaseInfo{
			Name:        PhaseFollicularMid,
			DisplayName: "Early Follicular",
			Range:       dayRangeLabel(bleedingLength+1, earlyFollicularEnd),
		}
	}

	midFollicularEnd := max(earlyFollicularEnd, ovulationDay-6)
	if cycleDay > earlyFollicularEnd && cycleDay <= midFollicularEnd {
		return PhaseInfo{
			Name:        PhaseFollicularMid,
			DisplayName: "Mid Follicular",
			Range:       dayRangeLabel(earlyFollicularEnd+1, midFollicularEnd),
		}
	}

	highFollicularEnd := max(midFollicularEnd, ovulationDay-3)
	if cycleDay > midFollicularEnd && cycleDay <= highFollicularEnd {
		return PhaseInfo{
			Name:        PhaseFollicularHigh,
			DisplayName: "High Follicular",
			Range:       dayRangeLabel(midFollicularEnd+1, highFollicularEnd),
		}
	}

	fertileWindowEnd := max(highFollicularEnd, ovulationDay+1)
	if cycleDay > highFollicularEnd && cycleDay <= fertileWindowEnd {
		return PhaseInfo{
			Name:        PhaseOvulatory,
			DisplayName: "Ovulatory",
			Range:       dayRangeLabel(highFollicularEnd+1, fertileWindowEnd),
			IsFertile:   true,
			IsOvulation: cycleDay == ovulationDay,
		}
	}

	earlyLutealEnd := ovulationDay + 7
	if cycleDay > fertileWindowEnd && cycleDay <= earlyLutealEnd {
		return PhaseInfo{
			Name:        PhaseLutealEarly,
			DisplayName: "Early Luteal",
			Range:       dayRangeLabel(fertileWindowEnd+1, earlyLutealEnd),
		}
	}

	midLutealEnd := ovulationDay + 10
	if cycleDay > earlyLutealEnd && cycleDay <= midLutealEnd {
		return PhaseInfo{
			Name:        PhaseLutealMid,
			DisplayName: "Mid Luteal",
			Range:       dayRangeLabel(earlyLutealEnd+1, midLutealEnd),
		}
	}

	return PhaseInfo{
		Name:        PhaseLutealLate,
		DisplayName: "Late Luteal / Premenstrual",
		Range:       dayRangeLabel(midLutealEnd+1, cycleLength),
	}
}

// CycleDayFromDate returns the 1-based cycle day of date for a cycle starting on cycleStart.
func CycleDayFromDate(date time.Time, cycleStart time.Time) int {
	return CalendarDaysBetween(cycleStart, date) + 1
}

func NextPeriodDate(lastPeriodDate time.Time, cycleLength int) time.Time {
	return lastPeriodDate.AddDate(0, 0, cycleLength)
}

// CurrentCycleDay wraps the elapsed days since lastPeriodDate into [1, cycleLength].
func CurrentCycleDay(lastPeriodDate time.Time, cycleLength int, now time.Time) int {
	if cycleLength <= 0 {
		return 1
	}
	raw := CycleDayFromDate(now, lastPeriodDate)
	return ((raw-1)%cycleLength+cycleLength)%cycleLength + 1
}

// FormatRelativeDay renders a relative day as O, O+3 or O-5.
func FormatRelativeDay(relativeDay int) string {
	switch {
	case relativeDay == 0:
		return "O"
	case relativeDay > 0:
		return "O+" + strconv.Itoa(relativeDay)
	default:
		return "O" + strconv.Itoa(relativeDay)
	}
}

func dayRangeLabel(start int, end int) string {
	return fmt.Sprintf("Day %d-%d", start, end)
}
