package api

import (
	"gorm.io/gorm"

	"github.com/bloombuddy/bloombuddy/internal/db"
	"github.com/bloombuddy/bloombuddy/internal/services"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.profileService = services.NewProfileService(handler.repositories.HealthProfiles, handler.repositories.Users)
	handler.cycleService = services.NewCycleService(handler.repositories.CycleDays)
	handler.moodService = services.NewMoodService(handler.repositories.MoodEntries)
	handler.fitnessService = services.NewFitnessService(handler.repositories.FitnessEntries, handler.repositories.WaterReadings)
	handler.dashboardService = services.NewDashboardService(handler.repositories.HealthProfiles, handler.fitnessService)
	handler.exportService = services.NewExportService(
		handler.repositories.HealthProfiles,
		handler.cycleService,
		handler.moodService,
		handler.fitnessService,
		handler.repositories.WaterReadings,
	)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.withDependencies(handler.db)
	}
}
