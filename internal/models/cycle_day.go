package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

// CycleDay records one logged period day. At most one entry exists per
// user and calendar date.
type CycleDay struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_cycle_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_cycle_user_date"`
	Flow      string    `gorm:"not null;default:medium"`
	Symptoms  []string  `gorm:"serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (day CycleDay) Day() time.Time {
	return day.Date
}

func FlowValues() []string {
	return []string{FlowLight, FlowMedium, FlowHeavy}
}

// KnownSymptoms is the tag vocabulary offered by the logging form. Stored
// symptoms are free text, so older tags survive vocabulary changes.
func KnownSymptoms() []string {
	return []string{"cramps", "headache", "bloating", "fatigue", "mood swings", "backache"}
}
