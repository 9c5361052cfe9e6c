package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bloombuddy/bloombuddy/internal/services"
)

func (handler *Handler) GetCycleDays(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	days, err := handler.cycleService.ListCycleDays(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycle days")
	}

	responses := make([]cycleDayResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, handler.cycleDayToResponse(day))
	}
	return c.JSON(responses)
}

func (handler *Handler) UpsertCycleDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := cycleDayPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	handler.ensureDependencies()
	entry, err := handler.cycleService.UpsertCycleDay(user.ID, day, services.CycleDayInput{
		Flow:     payload.Flow,
		Symptoms: payload.Symptoms,
	}, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFlowValue) {
			return apiError(c, fiber.StatusBadRequest, "invalid flow value")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save cycle day")
	}

	return c.JSON(handler.cycleDayToResponse(entry))
}

func (handler *Handler) DeleteCycleDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	if err := handler.cycleService.DeleteCycleDay(user.ID, day, handler.location); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete cycle day")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
