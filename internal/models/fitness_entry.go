package models

import "time"

const (
	ActivityWalking  = "walking"
	ActivityRunning  = "running"
	ActivityYoga     = "yoga"
	ActivityStrength = "strength"
	ActivityCycling  = "cycling"
	ActivitySwimming = "swimming"
	ActivityOther    = "other"
)

// FitnessEntry records one workout. Unlike cycle and mood logs, several
// entries may share a calendar date; the ID tells them apart.
type FitnessEntry struct {
	ID              string    `gorm:"type:varchar(36);primaryKey"`
	UserID          uint      `gorm:"not null;index:idx_fitness_user_date"`
	Date            time.Time `gorm:"type:date;not null;index:idx_fitness_user_date"`
	ActivityType    string    `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	Calories        int       `gorm:"not null"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (entry FitnessEntry) Day() time.Time {
	return entry.Date
}

func (entry FitnessEntry) EntryID() string {
	return entry.ID
}

func ActivityTypeValues() []string {
	return []string{
		ActivityWalking,
		ActivityRunning,
		ActivityYoga,
		ActivityStrength,
		ActivityCycling,
		ActivitySwimming,
		ActivityOther,
	}
}
