package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
)

type fitnessRepositoryStub struct {
	entries map[string]models.FitnessEntry
}

func newFitnessRepositoryStub() *fitnessRepositoryStub {
	return &fitnessRepositoryStub{entries: make(map[string]models.FitnessEntry)}
}

func (stub *fitnessRepositoryStub) ListByUser(userID uint) ([]models.FitnessEntry, error) {
	entries := make([]models.FitnessEntry, 0)
	for _, entry := range stub.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func (stub *fitnessRepositoryStub) ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.FitnessEntry, error) {
	entries := make([]models.FitnessEntry, 0)
	for _, entry := range stub.entries {
		if entry.UserID != userID {
			continue
		}
		if entry.Date.Before(rangeStart) || !entry.Date.Before(rangeEnd) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (stub *fitnessRepositoryStub) FindByUserAndID(userID uint, entryID string) (models.FitnessEntry, bool, error) {
	entry, ok := stub.entries[entryID]
	if !ok || entry.UserID != userID {
		return models.FitnessEntry{}, false, nil
	}
	return entry, true, nil
}

func (stub *fitnessRepositoryStub) Create(entry *models.FitnessEntry) error {
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *fitnessRepositoryStub) Save(entry *models.FitnessEntry) error {
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *fitnessRepositoryStub) DeleteByUserAndID(userID uint, entryID string) error {
	entry, ok := stub.entries[entryID]
	if ok && entry.UserID == userID {
		delete(stub.entries, entryID)
	}
	return nil
}

type waterRepositoryStub struct {
	readings map[string]models.WaterReading
	nextID   uint
}

func newWaterRepositoryStub() *waterRepositoryStub {
	return &waterRepositoryStub{
		readings: make(map[string]models.WaterReading),
		nextID:   1,
	}
}

func (stub *waterRepositoryStub) dayKey(value time.Time) string {
	return value.Format("2006-01-02")
}

func (stub *waterRepositoryStub) ListByUser(userID uint) ([]models.WaterReading, error) {
	readings := make([]models.WaterReading, 0)
	for _, reading := range stub.readings {
		if reading.UserID == userID {
			readings = append(readings, reading)
		}
	}
	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Date.After(readings[j].Date)
	})
	return readings, nil
}

func (stub *waterRepositoryStub) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.WaterReading, bool, error) {
	reading, ok := stub.readings[stub.dayKey(dayStart)]
	if !ok || reading.UserID != userID {
		return models.WaterReading{}, false, nil
	}
	return reading, true, nil
}

func (stub *waterRepositoryStub) Create(reading *models.WaterReading) error {
	reading.ID = stub.nextID
	stub.nextID++
	stub.readings[stub.dayKey(reading.Date)] = *reading
	return nil
}

func (stub *waterRepositoryStub) Save(reading *models.WaterReading) error {
	stub.readings[stub.dayKey(reading.Date)] = *reading
	return nil
}

func newFitnessServiceForTest() (*FitnessService, *fitnessRepositoryStub, *waterRepositoryStub) {
	entries := newFitnessRepositoryStub()
	water := newWaterRepositoryStub()
	return NewFitnessService(entries, water), entries, water
}

func TestCreateFitnessEntryValidatesInput(t *testing.T) {
	service, _, _ := newFitnessServiceForTest()
	day := mustParseDay("2025-03-03")

	if _, err := service.CreateEntry(5, day, FitnessEntryInput{ActivityType: "parkour", DurationMinutes: 30}, time.UTC); !errors.Is(err, ErrInvalidActivityType) {
		t.Fatalf("expected ErrInvalidActivityType, got %v", err)
	}
	if _, err := service.CreateEntry(5, day, FitnessEntryInput{ActivityType: "running", DurationMinutes: 0}, time.UTC); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if _, err := service.CreateEntry(5, day, FitnessEntryInput{ActivityType: "running", DurationMinutes: 30, Calories: -5}, time.UTC); !errors.Is(err, ErrInvalidCalories) {
		t.Fatalf("expected ErrInvalidCalories, got %v", err)
	}

	entry, err := service.CreateEntry(5, day, FitnessEntryInput{ActivityType: " Running", DurationMinutes: 30, Calories: 180}, time.UTC)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("expected a generated entry id")
	}
	if entry.ActivityType != models.ActivityRunning {
		t.Fatalf("expected normalized activity running, got %s", entry.ActivityType)
	}
}

func TestCreateFitnessEntryAllowsSeveralPerDay(t *testing.T) {
	service, _, _ := newFitnessServiceForTest()
	day := mustParseDay("2025-03-03")

	if _, err := service.CreateEntry(5, day, FitnessEntryInput{ActivityType: "walking", DurationMinutes: 30, Calories: 150}, time.UTC); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := service.CreateEntry(5, day, FitnessEntryInput{ActivityType: "yoga", DurationMinutes: 45, Calories: 120}, time.UTC); err != nil {
		t.Fatalf("second create: %v", err)
	}

	entries, err := service.ListEntries(5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected both same-day entries kept, got %d", len(entries))
	}
}

func TestUpdateFitnessEntryMissingIDIsAnError(t *testing.T) {
	service, _, _ := newFitnessServiceForTest()

	_, err := service.UpdateEntry(5, "missing", mustParseDay("2025-03-03"), FitnessEntryInput{ActivityType: "yoga", DurationMinutes: 20}, time.UTC)
	if !errors.Is(err, ErrFitnessEntryNotFound) {
		t.Fatalf("expected ErrFitnessEntryNotFound, got %v", err)
	}
}

func TestWeeklySummaryForUser(t *testing.T) {
	service, _, _ := newFitnessServiceForTest()
	// 2025-03-05 is a Wednesday; the week starts Sunday 2025-03-02.
	today := mustParseDay("2025-03-05")

	for _, item := range []struct {
		date     string
		duration int
		calories int
	}{
		{"2025-03-01", 60, 400}, // previous week
		{"2025-03-03", 30, 150},
		{"2025-03-03", 45, 220},
		{"2025-03-05", 20, 90},
	} {
		if _, err := service.CreateEntry(5, mustParseDay(item.date), FitnessEntryInput{
			ActivityType:    "walking",
			DurationMinutes: item.duration,
			Calories:        item.calories,
		}, time.UTC); err != nil {
			t.Fatalf("create %s: %v", item.date, err)
		}
	}

	summary, err := service.WeeklySummaryForUser(5, today, time.UTC)
	if err != nil {
		t.Fatalf("weekly summary: %v", err)
	}
	if summary.TotalDurationMinutes != 95 {
		t.Fatalf("expected duration 95 within the week, got %d", summary.TotalDurationMinutes)
	}
	if summary.TotalCalories != 460 {
		t.Fatalf("expected calories 460, got %d", summary.TotalCalories)
	}
	if summary.ActiveDays != 2 {
		t.Fatalf("expected 2 active days, got %d", summary.ActiveDays)
	}
}

func TestRecordWaterReplacesDailyReading(t *testing.T) {
	service, _, water := newFitnessServiceForTest()
	today := mustParseDay("2025-03-05")

	if amount, err := service.TodayWater(5, today, time.UTC); err != nil || amount != 0 {
		t.Fatalf("expected 0 before any reading, got %d (%v)", amount, err)
	}

	if _, err := service.RecordWater(5, today, 1500, time.UTC); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := service.RecordWater(5, today, 2000, time.UTC); err != nil {
		t.Fatalf("record again: %v", err)
	}

	amount, err := service.TodayWater(5, today, time.UTC)
	if err != nil {
		t.Fatalf("today water: %v", err)
	}
	if amount != 2000 {
		t.Fatalf("expected replacement 2000, got %d", amount)
	}
	if len(water.readings) != 1 {
		t.Fatalf("expected one stored reading, got %d", len(water.readings))
	}
}

func TestRecordWaterRejectsAboveCeiling(t *testing.T) {
	service, _, _ := newFitnessServiceForTest()

	_, err := service.RecordWater(5, mustParseDay("2025-03-05"), models.MaxWaterAmountML+500, time.UTC)
	if !errors.Is(err, ErrInvalidWaterAmount) {
		t.Fatalf("expected ErrInvalidWaterAmount, got %v", err)
	}
}
