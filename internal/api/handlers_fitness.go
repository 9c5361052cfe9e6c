package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bloombuddy/bloombuddy/internal/models"
	"github.com/bloombuddy/bloombuddy/internal/services"
)

func (handler *Handler) GetFitnessEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	entries, err := handler.fitnessService.ListEntries(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch fitness entries")
	}

	responses := make([]fitnessEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, handler.fitnessEntryToResponse(entry))
	}
	return c.JSON(responses)
}

func (handler *Handler) CreateFitnessEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload, day, message := handler.parseFitnessPayload(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	handler.ensureDependencies()
	entry, err := handler.fitnessService.CreateEntry(user.ID, day, services.FitnessEntryInput{
		ActivityType:    payload.ActivityType,
		DurationMinutes: payload.DurationMinutes,
		Calories:        payload.Calories,
		Notes:           payload.Notes,
	}, handler.location)
	if err != nil {
		if message, ok := fitnessValidationMessage(err); ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save fitness entry")
	}

	return c.Status(fiber.StatusCreated).JSON(handler.fitnessEntryToResponse(entry))
}

func (handler *Handler) UpdateFitnessEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID := strings.TrimSpace(c.Params("id"))
	if entryID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	payload, day, message := handler.parseFitnessPayload(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	handler.ensureDependencies()
	entry, err := handler.fitnessService.UpdateEntry(user.ID, entryID, day, services.FitnessEntryInput{
		ActivityType:    payload.ActivityType,
		DurationMinutes: payload.DurationMinutes,
		Calories:        payload.Calories,
		Notes:           payload.Notes,
	}, handler.location)
	if err != nil {
		if message, ok := fitnessValidationMessage(err); ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		if errors.Is(err, services.ErrFitnessEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "fitness entry not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save fitness entry")
	}

	return c.JSON(handler.fitnessEntryToResponse(entry))
}

func (handler *Handler) DeleteFitnessEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID := strings.TrimSpace(c.Params("id"))
	if entryID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.ensureDependencies()
	if err := handler.fitnessService.DeleteEntry(user.ID, entryID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete fitness entry")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFitnessSummary returns the rolling weekly totals, Sunday through today.
func (handler *Handler) GetFitnessSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	summary, err := handler.fitnessService.WeeklySummaryForUser(user.ID, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch fitness summary")
	}

	return c.JSON(summary)
}

func (handler *Handler) GetWaterIntake(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	amount, err := handler.fitnessService.TodayWater(user.ID, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch water intake")
	}

	return c.JSON(waterResponse{
		Date:     handler.formatDay(time.Now()),
		AmountML: amount,
		GoalML:   models.DailyWaterGoalML,
	})
}

func (handler *Handler) RecordWaterIntake(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := waterPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	handler.ensureDependencies()
	reading, err := handler.fitnessService.RecordWater(user.ID, time.Now(), payload.AmountML, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWaterAmount) {
			return apiError(c, fiber.StatusBadRequest, "invalid water amount")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save water intake")
	}

	return c.JSON(waterResponse{
		Date:     handler.formatDay(reading.Date),
		AmountML: reading.AmountML,
		GoalML:   models.DailyWaterGoalML,
	})
}

func (handler *Handler) parseFitnessPayload(c *fiber.Ctx) (fitnessPayload, time.Time, string) {
	payload := fitnessPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return fitnessPayload{}, time.Time{}, "invalid payload"
	}

	day, err := parseDayParam(strings.TrimSpace(payload.Date), handler.location)
	if err != nil {
		return fitnessPayload{}, time.Time{}, "invalid date"
	}
	return payload, day, ""
}

func fitnessValidationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrInvalidActivityType):
		return "invalid activity type", true
	case errors.Is(err, services.ErrInvalidDuration):
		return "invalid duration", true
	case errors.Is(err, services.ErrInvalidCalories):
		return "invalid calories", true
	default:
		return "", false
	}
}
