package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetDashboardInsights(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	insights, err := handler.dashboardService.BuildInsights(user.ID, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build insights")
	}

	return c.JSON(insights)
}
