package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bloombuddy/bloombuddy/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return services.DateAtLocation(parsed, location), nil
}
