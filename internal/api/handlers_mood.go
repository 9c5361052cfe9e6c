package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bloombuddy/bloombuddy/internal/services"
)

func (handler *Handler) GetMoodEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	entries, err := handler.moodService.ListMoodEntries(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch mood entries")
	}

	responses := make([]moodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, handler.moodEntryToResponse(entry))
	}
	return c.JSON(responses)
}

func (handler *Handler) UpsertMoodEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := moodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	day, err := parseDayParam(strings.TrimSpace(payload.Date), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	entry, err := handler.moodService.UpsertMoodEntry(user.ID, day, services.MoodEntryInput{
		Mood:  payload.Mood,
		Notes: payload.Notes,
	}, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMoodValue) {
			return apiError(c, fiber.StatusBadRequest, "invalid mood value")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save mood entry")
	}

	return c.JSON(handler.moodEntryToResponse(entry))
}

func (handler *Handler) UpdateMoodEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID := strings.TrimSpace(c.Params("id"))
	if entryID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	payload := moodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	day, err := parseDayParam(strings.TrimSpace(payload.Date), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	entry, err := handler.moodService.UpdateMoodEntry(user.ID, entryID, day, services.MoodEntryInput{
		Mood:  payload.Mood,
		Notes: payload.Notes,
	}, handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMoodValue):
			return apiError(c, fiber.StatusBadRequest, "invalid mood value")
		case errors.Is(err, services.ErrMoodEntryNotFound):
			return apiError(c, fiber.StatusNotFound, "mood entry not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save mood entry")
		}
	}

	return c.JSON(handler.moodEntryToResponse(entry))
}

func (handler *Handler) DeleteMoodEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID := strings.TrimSpace(c.Params("id"))
	if entryID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.ensureDependencies()
	if err := handler.moodService.DeleteMoodEntry(user.ID, entryID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete mood entry")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
