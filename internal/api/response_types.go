package api

import (
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
	"github.com/bloombuddy/bloombuddy/internal/services"
)

const responseDateLayout = "2006-01-02"

type cycleDayResponse struct {
	Date     string   `json:"date"`
	Flow     string   `json:"flow"`
	Symptoms []string `json:"symptoms"`
}

type moodEntryResponse struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

type fitnessEntryResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	ActivityType    string `json:"activity_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Calories        int    `json:"calories"`
	Notes           string `json:"notes"`
}

type profileResponse struct {
	Age            int      `json:"age"`
	HeightCm       float64  `json:"height_cm"`
	WeightKg       float64  `json:"weight_kg"`
	LastPeriodDate string   `json:"last_period_date,omitempty"`
	PeriodDuration string   `json:"period_duration"`
	BirthControl   string   `json:"birth_control"`
	MoodSwings     []string `json:"mood_swings"`
}

type waterResponse struct {
	Date     string `json:"date"`
	AmountML int    `json:"amount_ml"`
	GoalML   int    `json:"goal_ml"`
}

func (handler *Handler) cycleDayToResponse(day models.CycleDay) cycleDayResponse {
	symptoms := day.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return cycleDayResponse{
		Date:     handler.formatDay(day.Date),
		Flow:     day.Flow,
		Symptoms: symptoms,
	}
}

func (handler *Handler) moodEntryToResponse(entry models.MoodEntry) moodEntryResponse {
	return moodEntryResponse{
		ID:    entry.ID,
		Date:  handler.formatDay(entry.Date),
		Mood:  entry.Mood,
		Notes: entry.Notes,
	}
}

func (handler *Handler) fitnessEntryToResponse(entry models.FitnessEntry) fitnessEntryResponse {
	return fitnessEntryResponse{
		ID:              entry.ID,
		Date:            handler.formatDay(entry.Date),
		ActivityType:    entry.ActivityType,
		DurationMinutes: entry.DurationMinutes,
		Calories:        entry.Calories,
		Notes:           entry.Notes,
	}
}

func (handler *Handler) profileToResponse(profile models.HealthProfile) profileResponse {
	moodSwings := profile.MoodSwings
	if moodSwings == nil {
		moodSwings = []string{}
	}
	response := profileResponse{
		Age:            profile.Age,
		HeightCm:       profile.HeightCm,
		WeightKg:       profile.WeightKg,
		PeriodDuration: profile.PeriodDuration,
		BirthControl:   profile.BirthControl,
		MoodSwings:     moodSwings,
	}
	if profile.LastPeriodDate != nil {
		response.LastPeriodDate = handler.formatDay(*profile.LastPeriodDate)
	}
	return response
}

func (handler *Handler) formatDay(day time.Time) string {
	return services.DateAtLocation(day, handler.location).Format(responseDateLayout)
}
