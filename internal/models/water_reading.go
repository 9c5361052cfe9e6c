package models

import "time"

const (
	// DailyWaterGoalML is a display target only, never an input limit.
	DailyWaterGoalML = 2000
	// MaxWaterAmountML is the application-level input ceiling.
	MaxWaterAmountML = 5000
)

// WaterReading is the single daily water-intake counter. Recording again on
// the same day replaces the amount rather than adding to it.
type WaterReading struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_water_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_water_user_date"`
	AmountML  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (reading WaterReading) Day() time.Time {
	return reading.Date
}
