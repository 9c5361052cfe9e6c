package services

import (
	"errors"
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
)

var ErrInvalidWaterAmount = errors.New("invalid water amount")

type WeeklySummary struct {
	TotalDurationMinutes int `json:"total_duration_minutes"`
	TotalCalories        int `json:"total_calories"`
	ActiveDays           int `json:"active_days"`
}

// WeeklyTotals rolls up the entries logged between weekStart and today,
// inclusive on both ends. ActiveDays counts distinct calendar dates, not
// entries.
func WeeklyTotals(entries []models.FitnessEntry, weekStart time.Time, today time.Time) WeeklySummary {
	rangeStart := DateAtLocation(weekStart, today.Location())
	rangeEnd := DateAtLocation(today, today.Location())

	summary := WeeklySummary{}
	activeDays := make(map[string]struct{})
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, today.Location())
		if day.Before(rangeStart) || day.After(rangeEnd) {
			continue
		}
		summary.TotalDurationMinutes += entry.DurationMinutes
		summary.TotalCalories += entry.Calories
		activeDays[day.Format("2006-01-02")] = struct{}{}
	}
	summary.ActiveDays = len(activeDays)
	return summary
}

// StartOfWeek returns the Sunday at or before the given day.
func StartOfWeek(today time.Time) time.Time {
	day := DateAtLocation(today, today.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// TodayWaterIntake returns the millilitres recorded for today, 0 when no
// reading exists.
func TodayWaterIntake(readings []models.WaterReading, today time.Time) int {
	for _, reading := range readings {
		if SameDay(reading.Date, today) {
			return reading.AmountML
		}
	}
	return 0
}

// RecordWaterIntake replaces today's reading, or appends one, keeping the
// collection newest first. Recording twice on the same day overwrites the
// amount instead of accumulating it.
func RecordWaterIntake(readings []models.WaterReading, today time.Time, amountML int) ([]models.WaterReading, error) {
	if amountML < 0 || amountML > models.MaxWaterAmountML {
		return nil, ErrInvalidWaterAmount
	}

	incoming := models.WaterReading{
		Date:     DateAtLocation(today, today.Location()),
		AmountML: amountML,
	}
	return ReconcileByDate(readings, incoming), nil
}
