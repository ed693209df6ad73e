package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportProfile(c *fiber.Ctx) error {
	profileID := currentProfileID(c)
	payload, err := handler.exports.ExportData(profileID)
	if err != nil {
		return handler.writeServiceError(c, err)
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(profileID, handler.now().In(handler.location)))
	return c.Send(payload)
}
