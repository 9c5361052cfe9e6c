package services

import (
	"errors"
	"strings"
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidActivityType    = errors.New("invalid activity type")
	ErrInvalidDuration        = errors.New("invalid duration")
	ErrInvalidCalories        = errors.New("invalid calories")
	ErrFitnessEntryNotFound   = errors.New("fitness entry not found")
	ErrFitnessEntrySaveFail   = errors.New("save fitness entry failed")
	ErrFitnessEntryLoadFail   = errors.New("load fitness entry failed")
	ErrFitnessEntryDeleteFail = errors.New("delete fitness entry failed")
	ErrWaterSaveFailed        = errors.New("save water reading failed")
)

type FitnessEntryInput struct {
	ActivityType    string
	DurationMinutes int
	Calories        int
	Notes           string
}

type FitnessRepository interface {
	ListByUser(userID uint) ([]models.FitnessEntry, error)
	ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.FitnessEntry, error)
	FindByUserAndID(userID uint, entryID string) (models.FitnessEntry, bool, error)
	Create(entry *models.FitnessEntry) error
	Save(entry *models.FitnessEntry) error
	DeleteByUserAndID(userID uint, entryID string) error
}

type WaterRepository interface {
	ListByUser(userID uint) ([]models.WaterReading, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.WaterReading, bool, error)
	Create(reading *models.WaterReading) error
	Save(reading *models.WaterReading) error
}

type FitnessService struct {
	entries FitnessRepository
	water   WaterRepository
}

func NewFitnessService(entries FitnessRepository, water WaterRepository) *FitnessService {
	return &FitnessService{
		entries: entries,
		water:   water,
	}
}

func (service *FitnessService) ListEntries(userID uint) ([]models.FitnessEntry, error) {
	return service.entries.ListByUser(userID)
}

func (service *FitnessService) CreateEntry(userID uint, day time.Time, input FitnessEntryInput, location *time.Location) (models.FitnessEntry, error) {
	input, err := normalizeFitnessInput(input)
	if err != nil {
		return models.FitnessEntry{}, err
	}

	entry := models.FitnessEntry{
		ID:              uuid.NewString(),
		UserID:          userID,
		Date:            DateAtLocation(day, location),
		ActivityType:    input.ActivityType,
		DurationMinutes: input.DurationMinutes,
		Calories:        input.Calories,
		Notes:           input.Notes,
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.FitnessEntry{}, ErrFitnessEntrySaveFail
	}
	return entry, nil
}

// UpdateEntry overwrites an existing workout by ID; a missing ID is an error.
func (service *FitnessService) UpdateEntry(userID uint, entryID string, day time.Time, input FitnessEntryInput, location *time.Location) (models.FitnessEntry, error) {
	input, err := normalizeFitnessInput(input)
	if err != nil {
		return models.FitnessEntry{}, err
	}

	entry, found, err := service.entries.FindByUserAndID(userID, entryID)
	if err != nil {
		return models.FitnessEntry{}, ErrFitnessEntryLoadFail
	}
	if !found {
		return models.FitnessEntry{}, ErrFitnessEntryNotFound
	}

	entry.Date = DateAtLocation(day, location)
	entry.ActivityType = input.ActivityType
	entry.DurationMinutes = input.DurationMinutes
	entry.Calories = input.Calories
	entry.Notes = input.Notes
	if err := service.entries.Save(&entry); err != nil {
		return models.FitnessEntry{}, ErrFitnessEntrySaveFail
	}
	return entry, nil
}

// DeleteEntry removes a workout by ID; a missing ID is a no-op.
func (service *FitnessService) DeleteEntry(userID uint, entryID string) error {
	if err := service.entries.DeleteByUserAndID(userID, entryID); err != nil {
		return ErrFitnessEntryDeleteFail
	}
	return nil
}

// WeeklySummaryForUser rolls up the current week, Sunday through today.
func (service *FitnessService) WeeklySummaryForUser(userID uint, today time.Time, location *time.Location) (WeeklySummary, error) {
	day := DateAtLocation(today, location)
	weekStart := StartOfWeek(day)
	entries, err := service.entries.ListByUserRange(userID, weekStart, day.AddDate(0, 0, 1))
	if err != nil {
		return WeeklySummary{}, err
	}
	return WeeklyTotals(entries, weekStart, day), nil
}

func (service *FitnessService) TodayWater(userID uint, today time.Time, location *time.Location) (int, error) {
	dayStart, dayEnd := DayRange(today, location)
	reading, found, err := service.water.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return reading.AmountML, nil
}

// RecordWater upserts today's single reading; recording again replaces the
// stored amount rather than adding to it.
func (service *FitnessService) RecordWater(userID uint, today time.Time, amountML int, location *time.Location) (models.WaterReading, error) {
	if amountML < 0 || amountML > models.MaxWaterAmountML {
		return models.WaterReading{}, ErrInvalidWaterAmount
	}

	dayStart, dayEnd := DayRange(today, location)
	reading, found, err := service.water.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.WaterReading{}, ErrWaterSaveFailed
	}

	if found {
		reading.AmountML = amountML
		if err := service.water.Save(&reading); err != nil {
			return models.WaterReading{}, ErrWaterSaveFailed
		}
		return reading, nil
	}

	reading = models.WaterReading{
		UserID:   userID,
		Date:     dayStart,
		AmountML: amountML,
	}
	if err := service.water.Create(&reading); err != nil {
		return models.WaterReading{}, ErrWaterSaveFailed
	}
	return reading, nil
}

func normalizeFitnessInput(input FitnessEntryInput) (FitnessEntryInput, error) {
	activityType := strings.ToLower(strings.TrimSpace(input.ActivityType))
	if !containsValue(models.ActivityTypeValues(), activityType) {
		return FitnessEntryInput{}, ErrInvalidActivityType
	}
	if input.DurationMinutes < 1 {
		return FitnessEntryInput{}, ErrInvalidDuration
	}
	if input.Calories < 0 {
		return FitnessEntryInput{}, ErrInvalidCalories
	}

	input.ActivityType = activityType
	return input, nil
}
