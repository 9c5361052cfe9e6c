package models

import "time"

const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
	MoodLoved   = "loved"
)

// MoodEntry records one journaled mood. At most one entry exists per user
// and calendar date; entries are also addressable by ID for edits.
type MoodEntry struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_mood_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_mood_user_date"`
	Mood      string    `gorm:"not null"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (entry MoodEntry) Day() time.Time {
	return entry.Date
}

func (entry MoodEntry) EntryID() string {
	return entry.ID
}

func MoodValues() []string {
	return []string{MoodHappy, MoodNeutral, MoodSad, MoodLoved}
}
