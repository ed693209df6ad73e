package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/phased/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// writeServiceError maps service failures onto HTTP statuses without leaking storage details.
func (handler *Handler) writeServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
			"field": validationErr.Field,
			"rule":  validationErr.Rule,
		})
	case errors.Is(err, services.ErrUnlockDenied):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrPasswordRequired):
		return apiError(c, fiber.StatusBadRequest, "password required")
	case errors.Is(err, services.ErrProfileNotFound):
		return apiError(c, fiber.StatusNotFound, "profile not found")
	default:
		handler.log.Errorw("request failed", "path", c.Path(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func (handler *Handler) parseDay(raw string) (time.Time, error) {
	value, err := time.ParseInLocation(dateParamLayout, strings.TrimSpace(raw), handler.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return value, nil
}

func (handler *Handler) parseOptionalDay(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	value, err := handler.parseDay(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func buildExportFilename(profileID string, now time.Time) string {
	return fmt.Sprintf("phased-export-%s-%s.json", profileID, now.Format(dateParamLayout))
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	c.Set(fiber.HeaderCacheControl, "no-store")
}

func currentProfileID(c *fiber.Ctx) string {
	profileID, _ := c.Locals(contextProfileIDKey).(string)
	return profileID
}
