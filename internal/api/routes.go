package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/profiles", handler.ListProfiles)
	api.Post("/profiles", handler.CreateProfile)
	api.Post("/profiles/:id/unlock", handler.UnlockProfile)

	// Group middleware would also match /unlock by prefix, so the session check is attached per route.
	session := handler.SessionRequired
	api.Post("/profiles/:id/lock", session, handler.LockProfile)
	api.Get("/profiles/:id", session, handler.GetProfile)
	api.Patch("/profiles/:id", session, handler.UpdateProfile)
	api.Delete("/profiles/:id", session, handler.DeleteProfile)
	api.Get("/profiles/:id/calendar", session, handler.GetCalendar)
	api.Get("/profiles/:id/status", session, handler.GetCycleStatus)
	api.Get("/profiles/:id/logs", session, handler.GetLogs)
	api.Put("/profiles/:id/logs/:date", session, handler.SaveLog)
	api.Get("/profiles/:id/export", session, handler.ExportProfile)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
