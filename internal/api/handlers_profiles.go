package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/phased/internal/services"
)

func (handler *Handler) ListProfiles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"profiles": handler.profiles.ListProfiles()})
}

func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	request := createProfileRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	input := request.ProfileInput
	if request.LastPeriodDate != "" {
		lastPeriod, err := handler.parseDay(request.LastPeriodDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid last period date")
		}
		input.LastPeriodDate = lastPeriod
	}

	profile, err := handler.profiles.CreateProfile(input, request.Password)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(services.NewProfileSummary(profile))
}

func (handler *Handler) UnlockProfile(c *fiber.Ctx) error {
	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.unlockLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many unlock attempts")
	}

	request := unlockRequest{}
	if err := c.BodyParser(&request); err != nil {
		handler.unlockLimiter.addFailure(limiterKey, now)
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profileID := c.Params("id")
	profile, err := handler.profiles.UnlockProfile(profileID, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrUnlockDenied) {
			handler.unlockLimiter.addFailure(limiterKey, now)
		}
		return handler.writeServiceError(c, err)
	}
	handler.unlockLimiter.reset(limiterKey)

	unlocked := handler.sessions.Create(profileID)
	token, err := handler.buildSessionToken(profileID, unlocked)
	if err != nil {
		handler.sessions.Clear(profileID)
		return handler.writeServiceError(c, err)
	}

	return c.JSON(unlockResponse{
		Token:     token,
		ExpiresAt: unlocked.ExpiresAt.UTC().Format(time.RFC3339),
		Profile:   services.NewProfileSummary(profile),
	})
}

func (handler *Handler) LockProfile(c *fiber.Ctx) error {
	handler.sessions.Clear(currentProfileID(c))
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, found, err := handler.profiles.GetProfile(currentProfileID(c))
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	return c.JSON(services.NewProfileSummary(profile))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	request := updateProfileRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	update := request.ProfileUpdate
	if request.LastPeriodDate != nil {
		lastPeriod, err := handler.parseDay(*request.LastPeriodDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid last period date")
		}
		update.LastPeriodDate = &lastPeriod
	}

	profileID := currentProfileID(c)
	updated, err := handler.profiles.UpdateProfile(profileID, update, request.Password)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}

	profile, _, err := handler.profiles.GetProfile(profileID)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(services.NewProfileSummary(profile))
}

func (handler *Handler) DeleteProfile(c *fiber.Ctx) error {
	profileID := currentProfileID(c)
	deleted, err := handler.profiles.DeleteProfile(profileID)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	handler.sessions.Clear(profileID)
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
