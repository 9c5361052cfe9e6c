package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bloombuddy/bloombuddy/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	profile, found, err := handler.profileService.LoadProfile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch profile")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}

	return c.JSON(handler.profileToResponse(profile))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	input := services.HealthProfileInput{
		Age:            payload.Age,
		HeightCm:       payload.HeightCm,
		WeightKg:       payload.WeightKg,
		PeriodDuration: strings.TrimSpace(payload.PeriodDuration),
		BirthControl:   strings.ToLower(strings.TrimSpace(payload.BirthControl)),
		MoodSwings:     payload.MoodSwings,
	}
	if raw := strings.TrimSpace(payload.LastPeriodDate); raw != "" {
		parsed, err := parseDayParam(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid last period date")
		}
		input.LastPeriodDate = &parsed
	}

	handler.ensureDependencies()
	profile, err := handler.profileService.SaveProfile(user.ID, input, handler.location)
	if err != nil {
		if message, ok := profileValidationMessage(err); ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	return c.JSON(handler.profileToResponse(profile))
}

func profileValidationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrInvalidProfileAge):
		return "invalid age", true
	case errors.Is(err, services.ErrInvalidProfileHeight):
		return "invalid height", true
	case errors.Is(err, services.ErrInvalidProfileWeight):
		return "invalid weight", true
	case errors.Is(err, services.ErrInvalidProfilePeriodDuration):
		return "invalid period duration", true
	case errors.Is(err, services.ErrInvalidProfileBirthControl):
		return "invalid birth control value", true
	case errors.Is(err, services.ErrInvalidProfileMoodSwings):
		return "invalid mood swing values", true
	default:
		return "", false
	}
}
