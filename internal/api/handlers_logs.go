package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/phased/internal/models"
)

func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	profileID := currentProfileID(c)
	from, err := handler.parseOptionalDay(c.Query("from"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.parseOptionalDay(c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	var logs []models.DayLog
	switch {
	case from == nil && to == nil:
		logs, err = handler.logs.GetLogs(profileID)
	case from != nil && to != nil:
		if to.Before(*from) {
			return apiError(c, fiber.StatusBadRequest, "range end before start")
		}
		logs, err = handler.logs.GetLogsInRange(profileID, *from, *to)
	default:
		return apiError(c, fiber.StatusBadRequest, "from and to must be provided together")
	}
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (handler *Handler) SaveLog(c *fiber.Ctx) error {
	day, err := handler.parseDay(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry := models.DayLog{}
	if err := c.BodyParser(&entry); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	entry.Date = day

	saved, err := handler.logs.SaveLog(currentProfileID(c), entry)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(saved)
}
