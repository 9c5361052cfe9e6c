package services

import (
	"errors"
	"strings"
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
)

var (
	ErrInvalidFlowValue     = errors.New("invalid flow value")
	ErrCycleDayLoadFailed   = errors.New("load cycle day failed")
	ErrCycleDayCreateFailed = errors.New("create cycle day failed")
	ErrCycleDayUpdateFailed = errors.New("update cycle day failed")
	ErrCycleDayDeleteFailed = errors.New("delete cycle day failed")
)

type CycleDayInput struct {
	Flow     string
	Symptoms []string
}

type CycleDayRepository interface {
	ListByUser(userID uint) ([]models.CycleDay, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.CycleDay, bool, error)
	Create(day *models.CycleDay) error
	Save(day *models.CycleDay) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error
}

type CycleService struct {
	days CycleDayRepository
}

func NewCycleService(days CycleDayRepository) *CycleService {
	return &CycleService{days: days}
}

// ListCycleDays returns the user's logged days newest first.
func (service *CycleService) ListCycleDays(userID uint) ([]models.CycleDay, error) {
	return service.days.ListByUser(userID)
}

// UpsertCycleDay applies the upsert-by-date rule: the existing entry for the
// calendar day is overwritten wholesale, otherwise a new one is created.
func (service *CycleService) UpsertCycleDay(userID uint, day time.Time, input CycleDayInput, location *time.Location) (models.CycleDay, error) {
	input, err := normalizeCycleDayInput(input)
	if err != nil {
		return models.CycleDay{}, err
	}

	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.days.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.CycleDay{}, ErrCycleDayLoadFailed
	}

	if found {
		entry.Flow = input.Flow
		entry.Symptoms = input.Symptoms
		if err := service.days.Save(&entry); err != nil {
			return models.CycleDay{}, ErrCycleDayUpdateFailed
		}
		return entry, nil
	}

	entry = models.CycleDay{
		UserID:   userID,
		Date:     dayStart,
		Flow:     input.Flow,
		Symptoms: input.Symptoms,
	}
	if err := service.days.Create(&entry); err != nil {
		return models.CycleDay{}, ErrCycleDayCreateFailed
	}
	return entry, nil
}

// DeleteCycleDay removes the entry for the calendar day. Deleting a day that
// was never logged is a no-op, not an error.
func (service *CycleService) DeleteCycleDay(userID uint, day time.Time, location *time.Location) error {
	dayStart, dayEnd := DayRange(day, location)
	if err := service.days.DeleteByUserAndDayRange(userID, dayStart, dayEnd); err != nil {
		return ErrCycleDayDeleteFailed
	}
	return nil
}

func normalizeCycleDayInput(input CycleDayInput) (CycleDayInput, error) {
	flow := strings.ToLower(strings.TrimSpace(input.Flow))
	if !containsValue(models.FlowValues(), flow) {
		return CycleDayInput{}, ErrInvalidFlowValue
	}

	symptoms := make([]string, 0, len(input.Symptoms))
	seen := make(map[string]struct{}, len(input.Symptoms))
	for _, symptom := range input.Symptoms {
		tag := strings.ToLower(strings.TrimSpace(symptom))
		if tag == "" {
			continue
		}
		if _, duplicate := seen[tag]; duplicate {
			continue
		}
		seen[tag] = struct{}{}
		symptoms = append(symptoms, tag)
	}

	return CycleDayInput{Flow: flow, Symptoms: symptoms}, nil
}
