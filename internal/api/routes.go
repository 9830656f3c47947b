package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	profiles := api.Group("/profiles", handler.AuthRequired)
	profiles.Get("/me", handler.GetMyProfile)
	profiles.Put("/me", handler.UpdateMyProfile)
	profiles.Get("/search", handler.SearchUsers)

	reminders := api.Group("/reminders", handler.AuthRequired)
	reminders.Get("", handler.ListReminders)
	reminders.Get("/overview", handler.GetRemindersOverview)
	reminders.Get("/calendar/:month", handler.GetCalendarMonth)
	reminders.Post("", handler.CreateReminder)
	reminders.Get("/:id", handler.GetReminder)
	reminders.Patch("/:id", handler.UpdateReminder)
	reminders.Delete("/:id", handler.DeleteReminder)
	reminders.Get("/:id/shares", handler.ListReminderShares)
	reminders.Post("/:id/shares", handler.ShareReminder)

	shares := api.Group("/shares", handler.AuthRequired)
	shares.Get("", handler.ListSharedWithMe)
	shares.Delete("/:id", handler.RemoveShare)

	media := api.Group("/media", handler.AuthRequired)
	media.Post("", handler.UploadMedia)
	media.Delete("", handler.DeleteMedia)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Post("/device", handler.RegisterDevice)
	notifications.Delete("/device", handler.UnregisterDevices)
	notifications.Delete("", handler.CancelMyNotifications)
	notifications.Delete("/:id", handler.CancelNotification)
}
