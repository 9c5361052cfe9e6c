package models

import "time"

const (
	PeriodDurationShort    = "1-3"
	PeriodDurationMedium   = "4-5"
	PeriodDurationLong     = "6-7"
	PeriodDurationVeryLong = "8+"
)

const (
	BirthControlYes = "yes"
	BirthControlNo  = "no"
)

const (
	MoodSwingMild     = "mild"
	MoodSwingModerate = "moderate"
	MoodSwingSevere   = "severe"
	MoodSwingNone     = "none"
)

const DefaultCycleLength = 28

// HealthProfile is the one-per-user onboarding record. It is only ever
// replaced as a whole; there is no partial-field update.
type HealthProfile struct {
	ID             uint       `gorm:"primaryKey"`
	UserID         uint       `gorm:"not null;uniqueIndex"`
	Age            int        `gorm:"not null"`
	HeightCm       float64    `gorm:"not null"`
	WeightKg       float64    `gorm:"not null"`
	LastPeriodDate *time.Time `gorm:"type:date"`
	PeriodDuration string     `gorm:"not null"`
	BirthControl   string     `gorm:"not null"`
	MoodSwings     []string   `gorm:"serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func PeriodDurationValues() []string {
	return []string{PeriodDurationShort, PeriodDurationMedium, PeriodDurationLong, PeriodDurationVeryLong}
}

func MoodSwingValues() []string {
	return []string{MoodSwingMild, MoodSwingModerate, MoodSwingSevere, MoodSwingNone}
}
