package services

import (
	"sort"
	"strings"
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
)

const exportDateLayout = "2006-01-02"

// ExportCSVHeaders lays out one column per known symptom tag, with free-text
// tags collected under Other.
var ExportCSVHeaders = []string{
	"Date",
	"Flow",
	"Cramps",
	"Headache",
	"Bloating",
	"Fatigue",
	"Mood swings",
	"Backache",
	"Other",
}

type ExportCycleReader interface {
	ListCycleDays(userID uint) ([]models.CycleDay, error)
}

type ExportMoodReader interface {
	ListMoodEntries(userID uint) ([]models.MoodEntry, error)
}

type ExportFitnessReader interface {
	ListEntries(userID uint) ([]models.FitnessEntry, error)
}

type ExportWaterReader interface {
	ListByUser(userID uint) ([]models.WaterReading, error)
}

type ExportProfileReader interface {
	FindByUser(userID uint) (models.HealthProfile, bool, error)
}

type ExportService struct {
	profiles ExportProfileReader
	cycle    ExportCycleReader
	moods    ExportMoodReader
	fitness  ExportFitnessReader
	water    ExportWaterReader
}

type ExportSummary struct {
	CycleDayCount     int    `json:"cycle_day_count"`
	MoodEntryCount    int    `json:"mood_entry_count"`
	FitnessEntryCount int    `json:"fitness_entry_count"`
	WaterReadingCount int    `json:"water_reading_count"`
	HasData           bool   `json:"has_data"`
	DateFrom          string `json:"date_from"`
	DateTo            string `json:"date_to"`
}

type ExportProfile struct {
	Age            int      `json:"age"`
	HeightCm       float64  `json:"height_cm"`
	WeightKg       float64  `json:"weight_kg"`
	LastPeriodDate string   `json:"last_period_date,omitempty"`
	PeriodDuration string   `json:"period_duration"`
	BirthControl   string   `json:"birth_control"`
	MoodSwings     []string `json:"mood_swings"`
}

type ExportCycleDay struct {
	Date     string   `json:"date"`
	Flow     string   `json:"flow"`
	Symptoms []string `json:"symptoms"`
}

type ExportMoodEntry struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

type ExportFitnessEntry struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	ActivityType    string `json:"activity_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Calories        int    `json:"calories"`
	Notes           string `json:"notes"`
}

type ExportWaterReading struct {
	Date     string `json:"date"`
	AmountML int    `json:"amount_ml"`
}

type ExportSnapshot struct {
	Profile       *ExportProfile       `json:"profile,omitempty"`
	CycleDays     []ExportCycleDay     `json:"cycle_days"`
	MoodEntries   []ExportMoodEntry    `json:"mood_entries"`
	FitnessLog    []ExportFitnessEntry `json:"fitness_log"`
	WaterReadings []ExportWaterReading `json:"water_readings"`
}

type ExportCSVRow struct {
	Date     string
	Flow     string
	Symptoms []string
}

func NewExportService(profiles ExportProfileReader, cycle ExportCycleReader, moods ExportMoodReader, fitness ExportFitnessReader, water ExportWaterReader) *ExportService {
	return &ExportService{
		profiles: profiles,
		cycle:    cycle,
		moods:    moods,
		fitness:  fitness,
		water:    water,
	}
}

func (service *ExportService) BuildSummary(userID uint, location *time.Location) (ExportSummary, error) {
	cycleDays, err := service.cycle.ListCycleDays(userID)
	if err != nil {
		return ExportSummary{}, err
	}
	moodEntries, err := service.moods.ListMoodEntries(userID)
	if err != nil {
		return ExportSummary{}, err
	}
	fitnessEntries, err := service.fitness.ListEntries(userID)
	if err != nil {
		return ExportSummary{}, err
	}
	waterReadings, err := service.water.ListByUser(userID)
	if err != nil {
		return ExportSummary{}, err
	}

	summary := ExportSummary{
		CycleDayCount:     len(cycleDays),
		MoodEntryCount:    len(moodEntries),
		FitnessEntryCount: len(fitnessEntries),
		WaterReadingCount: len(waterReadings),
	}

	var first, last time.Time
	track := func(day time.Time) {
		normalized := DateAtLocation(day, location)
		if first.IsZero() || normalized.Before(first) {
			first = normalized
		}
		if last.IsZero() || normalized.After(last) {
			last = normalized
		}
	}
	for _, day := range cycleDays {
		track(day.Date)
	}
	for _, entry := range moodEntries {
		track(entry.Date)
	}
	for _, entry := range fitnessEntries {
		track(entry.Date)
	}
	for _, reading := range waterReadings {
		track(reading.Date)
	}

	if !first.IsZero() {
		summary.HasData = true
		summary.DateFrom = first.Format(exportDateLayout)
		summary.DateTo = last.Format(exportDateLayout)
	}
	return summary, nil
}

func (service *ExportService) BuildSnapshot(userID uint, location *time.Location) (ExportSnapshot, error) {
	snapshot := ExportSnapshot{
		CycleDays:     []ExportCycleDay{},
		MoodEntries:   []ExportMoodEntry{},
		FitnessLog:    []ExportFitnessEntry{},
		WaterReadings: []ExportWaterReading{},
	}

	profile, found, err := service.profiles.FindByUser(userID)
	if err != nil {
		return ExportSnapshot{}, err
	}
	if found {
		exported := ExportProfile{
			Age:            profile.Age,
			HeightCm:       profile.HeightCm,
			WeightKg:       profile.WeightKg,
			PeriodDuration: profile.PeriodDuration,
			BirthControl:   profile.BirthControl,
			MoodSwings:     profile.MoodSwings,
		}
		if profile.LastPeriodDate != nil {
			exported.LastPeriodDate = DateAtLocation(*profile.LastPeriodDate, location).Format(exportDateLayout)
		}
		snapshot.Profile = &exported
	}

	cycleDays, err := service.cycle.ListCycleDays(userID)
	if err != nil {
		return ExportSnapshot{}, err
	}
	for _, day := range cycleDays {
		snapshot.CycleDays = append(snapshot.CycleDays, ExportCycleDay{
			Date:     DateAtLocation(day.Date, location).Format(exportDateLayout),
			Flow:     day.Flow,
			Symptoms: day.Symptoms,
		})
	}

	moodEntries, err := service.moods.ListMoodEntries(userID)
	if err != nil {
		return ExportSnapshot{}, err
	}
	for _, entry := range moodEntries {
		snapshot.MoodEntries = append(snapshot.MoodEntries, ExportMoodEntry{
			ID:    entry.ID,
			Date:  DateAtLocation(entry.Date, location).Format(exportDateLayout),
			Mood:  entry.Mood,
			Notes: entry.Notes,
		})
	}

	fitnessEntries, err := service.fitness.ListEntries(userID)
	if err != nil {
		return ExportSnapshot{}, err
	}
	for _, entry := range fitnessEntries {
		snapshot.FitnessLog = append(snapshot.FitnessLog, ExportFitnessEntry{
			ID:              entry.ID,
			Date:            DateAtLocation(entry.Date, location).Format(exportDateLayout),
			ActivityType:    entry.ActivityType,
			DurationMinutes: entry.DurationMinutes,
			Calories:        entry.Calories,
			Notes:           entry.Notes,
		})
	}

	waterReadings, err := service.water.ListByUser(userID)
	if err != nil {
		return ExportSnapshot{}, err
	}
	for _, reading := range waterReadings {
		snapshot.WaterReadings = append(snapshot.WaterReadings, ExportWaterReading{
			Date:     DateAtLocation(reading.Date, location).Format(exportDateLayout),
			AmountML: reading.AmountML,
		})
	}

	return snapshot, nil
}

func (service *ExportService) BuildCSVRows(userID uint, location *time.Location) ([]ExportCSVRow, error) {
	cycleDays, err := service.cycle.ListCycleDays(userID)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportCSVRow, 0, len(cycleDays))
	for _, day := range cycleDays {
		rows = append(rows, ExportCSVRow{
			Date:     DateAtLocation(day.Date, location).Format(exportDateLayout),
			Flow:     day.Flow,
			Symptoms: day.Symptoms,
		})
	}
	return rows, nil
}

func (row ExportCSVRow) Columns() []string {
	known := models.KnownSymptoms()
	flagged := make(map[string]bool, len(known))
	otherSet := make(map[string]struct{})

	for _, symptom := range row.Symptoms {
		tag := strings.ToLower(strings.TrimSpace(symptom))
		if tag == "" {
			continue
		}
		if containsValue(known, tag) {
			flagged[tag] = true
			continue
		}
		otherSet[tag] = struct{}{}
	}

	other := make([]string, 0, len(otherSet))
	for tag := range otherSet {
		other = append(other, tag)
	}
	sort.Strings(other)

	columns := []string{row.Date, row.Flow}
	for _, tag := range known {
		columns = append(columns, csvYesNo(flagged[tag]))
	}
	columns = append(columns, strings.Join(other, "; "))
	return columns
}

func csvYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
