package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	cycle := api.Group("/cycle", handler.AuthRequired)
	cycle.Get("/days", handler.GetCycleDays)
	cycle.Post("/days/:date", handler.UpsertCycleDay)
	cycle.Delete("/days/:date", handler.DeleteCycleDay)

	moods := api.Group("/moods", handler.AuthRequired)
	moods.Get("", handler.GetMoodEntries)
	moods.Post("", handler.UpsertMoodEntry)
	moods.Put("/:id", handler.UpdateMoodEntry)
	moods.Delete("/:id", handler.DeleteMoodEntry)

	fitness := api.Group("/fitness", handler.AuthRequired)
	fitness.Get("/entries", handler.GetFitnessEntries)
	fitness.Post("/entries", handler.CreateFitnessEntry)
	fitness.Put("/entries/:id", handler.UpdateFitnessEntry)
	fitness.Delete("/entries/:id", handler.DeleteFitnessEntry)
	fitness.Get("/summary", handler.GetFitnessSummary)
	fitness.Get("/water", handler.GetWaterIntake)
	fitness.Post("/water", handler.RecordWaterIntake)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/insights", handler.GetDashboardInsights)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}
