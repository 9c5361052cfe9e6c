package services

import (
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
)

const (
	PhaseMenstruation = "menstruation"
	PhaseFollicular   = "follicular"
	PhaseOvulation    = "ovulation"
	PhaseLuteal       = "luteal"
	PhaseUnknown      = "unknown"
)

// PhaseThresholds marks the last cycle day of each phase before luteal.
// The labels are coarse estimates, not a medical claim.
type PhaseThresholds struct {
	MenstruationEnd int
	FollicularEnd   int
	OvulationEnd    int
}

func DefaultPhaseThresholds() PhaseThresholds {
	return PhaseThresholds{
		MenstruationEnd: 5,
		FollicularEnd:   14,
		OvulationEnd:    16,
	}
}

// PredictNextPeriod is pure date arithmetic: the last period start plus one
// cycle. A future-dated start simply propagates forward.
func PredictNextPeriod(lastPeriodDate time.Time, cycleLengthDays int) time.Time {
	if cycleLengthDays <= 0 {
		cycleLengthDays = models.DefaultCycleLength
	}
	return DateAtLocation(lastPeriodDate, lastPeriodDate.Location()).AddDate(0, 0, cycleLengthDays)
}

// CurrentCyclePhase classifies today into a coarse cycle phase from the days
// elapsed since the last period start. Without a recorded start, or with a
// start still in the future, the phase is unknown rather than a wrapped
// modulo guess.
func CurrentCyclePhase(lastPeriodDate *time.Time, today time.Time, cycleLengthDays int) string {
	return CyclePhaseWithThresholds(lastPeriodDate, today, cycleLengthDays, DefaultPhaseThresholds())
}

func CyclePhaseWithThresholds(lastPeriodDate *time.Time, today time.Time, cycleLengthDays int, thresholds PhaseThresholds) string {
	cycleDay := CurrentCycleDay(lastPeriodDate, today, cycleLengthDays)
	if cycleDay <= 0 {
		return PhaseUnknown
	}

	switch {
	case cycleDay <= thresholds.MenstruationEnd:
		return PhaseMenstruation
	case cycleDay <= thresholds.FollicularEnd:
		return PhaseFollicular
	case cycleDay <= thresholds.OvulationEnd:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}

// CurrentCycleDay returns the 1-based day within the running cycle, wrapping
// past cycle boundaries, or 0 when it cannot be derived.
func CurrentCycleDay(lastPeriodDate *time.Time, today time.Time, cycleLengthDays int) int {
	if lastPeriodDate == nil || lastPeriodDate.IsZero() {
		return 0
	}
	if cycleLengthDays <= 0 {
		cycleLengthDays = models.DefaultCycleLength
	}

	start := DateAtLocation(*lastPeriodDate, today.Location())
	day := DateAtLocation(today, today.Location())
	if day.Before(start) {
		return 0
	}

	daysSince := int(day.Sub(start).Hours() / 24)
	return daysSince%cycleLengthDays + 1
}

// PredictMoodOutlook maps the current phase onto the dashboard's mood card.
// Like the phase itself this is an estimate only.
func PredictMoodOutlook(phase string) string {
	switch phase {
	case PhaseMenstruation:
		return "low energy"
	case PhaseFollicular:
		return "stable"
	case PhaseOvulation:
		return "energized"
	case PhaseLuteal:
		return "sensitive"
	default:
		return "stable"
	}
}
