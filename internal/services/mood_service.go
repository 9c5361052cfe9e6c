package services

import (
	"errors"
	"strings"
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidMoodValue   = errors.New("invalid mood value")
	ErrMoodEntryNotFound  = errors.New("mood entry not found")
	ErrMoodEntrySaveFail  = errors.New("save mood entry failed")
	ErrMoodEntryLoadFail  = errors.New("load mood entry failed")
	ErrMoodEntryDeleteErr = errors.New("delete mood entry failed")
)

type MoodEntryInput struct {
	Mood  string
	Notes string
}

type MoodRepository interface {
	ListByUser(userID uint) ([]models.MoodEntry, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error)
	FindByUserAndID(userID uint, entryID string) (models.MoodEntry, bool, error)
	Create(entry *models.MoodEntry) error
	Save(entry *models.MoodEntry) error
	DeleteByUserAndID(userID uint, entryID string) error
}

type MoodService struct {
	moods MoodRepository
}

func NewMoodService(moods MoodRepository) *MoodService {
	return &MoodService{moods: moods}
}

func (service *MoodService) ListMoodEntries(userID uint) ([]models.MoodEntry, error) {
	return service.moods.ListByUser(userID)
}

// UpsertMoodEntry keeps at most one entry per calendar day: logging a mood
// for an already-journaled day overwrites that day's entry.
func (service *MoodService) UpsertMoodEntry(userID uint, day time.Time, input MoodEntryInput, location *time.Location) (models.MoodEntry, error) {
	mood, err := normalizeMood(input.Mood)
	if err != nil {
		return models.MoodEntry{}, err
	}

	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.moods.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodEntry{}, ErrMoodEntryLoadFail
	}

	if found {
		entry.Mood = mood
		entry.Notes = input.Notes
		if err := service.moods.Save(&entry); err != nil {
			return models.MoodEntry{}, ErrMoodEntrySaveFail
		}
		return entry, nil
	}

	entry = models.MoodEntry{
		ID:     uuid.NewString(),
		UserID: userID,
		Date:   dayStart,
		Mood:   mood,
		Notes:  input.Notes,
	}
	if err := service.moods.Create(&entry); err != nil {
		return models.MoodEntry{}, ErrMoodEntrySaveFail
	}
	return entry, nil
}

// UpdateMoodEntry edits an existing entry by ID. Unlike delete, updating a
// missing entry is an error surfaced to the caller.
func (service *MoodService) UpdateMoodEntry(userID uint, entryID string, day time.Time, input MoodEntryInput, location *time.Location) (models.MoodEntry, error) {
	mood, err := normalizeMood(input.Mood)
	if err != nil {
		return models.MoodEntry{}, err
	}

	entry, found, err := service.moods.FindByUserAndID(userID, entryID)
	if err != nil {
		return models.MoodEntry{}, ErrMoodEntryLoadFail
	}
	if !found {
		return models.MoodEntry{}, ErrMoodEntryNotFound
	}

	entry.Date = DateAtLocation(day, location)
	entry.Mood = mood
	entry.Notes = input.Notes
	if err := service.moods.Save(&entry); err != nil {
		return models.MoodEntry{}, ErrMoodEntrySaveFail
	}
	return entry, nil
}

// DeleteMoodEntry removes the entry by ID; a missing ID is a no-op.
func (service *MoodService) DeleteMoodEntry(userID uint, entryID string) error {
	if err := service.moods.DeleteByUserAndID(userID, entryID); err != nil {
		return ErrMoodEntryDeleteErr
	}
	return nil
}

func normalizeMood(raw string) (string, error) {
	mood := strings.ToLower(strings.TrimSpace(raw))
	if !containsValue(models.MoodValues(), mood) {
		return "", ErrInvalidMoodValue
	}
	return mood, nil
}
