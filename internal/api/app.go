package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type AppConfig struct {
	TrustProxy bool
}

// NewApp builds the fiber application with request logging routed through zap.
func NewApp(handler *Handler, config AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "phased",
		DisableStartupMessage: true,
		ProxyHeader:           proxyHeader(config.TrustProxy),
		ErrorHandler:          handler.errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${status} ${method} ${path} ${latency}\n",
		Output: zap.NewStdLog(handler.log.Desugar().Named("http")).Writer(),
	}))

	RegisterRoutes(app, handler)
	return app
}

func proxyHeader(trustProxy bool) string {
	if trustProxy {
		return fiber.HeaderXForwardedFor
	}
	return ""
}

func (handler *Handler) errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return apiError(c, fiberErr.Code, fiberErr.Message)
	}
	handler.log.Errorw("unhandled request error", "path", c.Path(), "error", err)
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}
