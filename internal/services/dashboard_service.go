package services

import (
	"time"

	"github.com/bloombuddy/bloombuddy/internal/models"
)

// NotAvailable is the dashboard sentinel shown while the profile is still
// incomplete. A partial profile is an expected steady state for new users,
// never an error.
const NotAvailable = "not available"

type DashboardInsights struct {
	NextPeriodDate string        `json:"next_period_date"`
	CycleDay       int           `json:"cycle_day"`
	CyclePhase     string        `json:"cycle_phase"`
	MoodOutlook    string        `json:"mood_outlook"`
	PeriodDuration string        `json:"period_duration"`
	WeeklyFitness  WeeklySummary `json:"weekly_fitness"`
	WaterIntakeML  int           `json:"water_intake_ml"`
	WaterGoalML    int           `json:"water_goal_ml"`
}

type DashboardProfileReader interface {
	FindByUser(userID uint) (models.HealthProfile, bool, error)
}

type DashboardFitnessReader interface {
	WeeklySummaryForUser(userID uint, today time.Time, location *time.Location) (WeeklySummary, error)
	TodayWater(userID uint, today time.Time, location *time.Location) (int, error)
}

type DashboardService struct {
	profiles DashboardProfileReader
	fitness  DashboardFitnessReader
}

func NewDashboardService(profiles DashboardProfileReader, fitness DashboardFitnessReader) *DashboardService {
	return &DashboardService{
		profiles: profiles,
		fitness:  fitness,
	}
}

// BuildInsights recomputes every derived dashboard value from the stored
// snapshot. All cycle numbers are estimates from date arithmetic, not
// medical predictions.
func (service *DashboardService) BuildInsights(userID uint, today time.Time, location *time.Location) (DashboardInsights, error) {
	insights := DashboardInsights{
		NextPeriodDate: NotAvailable,
		CyclePhase:     PhaseUnknown,
		PeriodDuration: NotAvailable,
		WaterGoalML:    models.DailyWaterGoalML,
	}

	profile, found, err := service.profiles.FindByUser(userID)
	if err != nil {
		return DashboardInsights{}, err
	}

	if found {
		if profile.PeriodDuration != "" {
			insights.PeriodDuration = profile.PeriodDuration
		}
		if profile.LastPeriodDate != nil {
			day := DateAtLocation(today, location)
			insights.NextPeriodDate = PredictNextPeriod(*profile.LastPeriodDate, models.DefaultCycleLength).Format("2006-01-02")
			insights.CycleDay = CurrentCycleDay(profile.LastPeriodDate, day, models.DefaultCycleLength)
			insights.CyclePhase = CurrentCyclePhase(profile.LastPeriodDate, day, models.DefaultCycleLength)
		}
	}
	insights.MoodOutlook = PredictMoodOutlook(insights.CyclePhase)

	weekly, err := service.fitness.WeeklySummaryForUser(userID, today, location)
	if err != nil {
		return DashboardInsights{}, err
	}
	insights.WeeklyFitness = weekly

	waterIntake, err := service.fitness.TodayWater(userID, today, location)
	if err != nil {
		return DashboardInsights{}, err
	}
	insights.WaterIntakeML = waterIntake

	return insights, nil
}
