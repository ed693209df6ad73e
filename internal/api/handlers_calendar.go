package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/phased/internal/models"
)

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	start, err := handler.parseOptionalDay(c.Query("start"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}

	profile, ok, err := handler.loadCurrentProfile(c)
	if !ok {
		return err
	}

	calendar, err := handler.profiles.GenerateCycleCalendar(profile, start)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"days": calendar})
}

func (handler *Handler) GetCycleStatus(c *fiber.Ctx) error {
	profile, ok, err := handler.loadCurrentProfile(c)
	if !ok {
		return err
	}
	return c.JSON(handler.profiles.CurrentCycleStatus(profile, handler.now()))
}

// loadCurrentProfile writes the error response itself and reports false when the request must stop.
func (handler *Handler) loadCurrentProfile(c *fiber.Ctx) (models.Profile, bool, error) {
	profile, found, err := handler.profiles.GetProfile(currentProfileID(c))
	if err != nil {
		return models.Profile{}, false, handler.writeServiceError(c, err)
	}
	if !found {
		return models.Profile{}, false, apiError(c, fiber.StatusNotFound, "profile not found")
	}
	return profile, true, nil
}
