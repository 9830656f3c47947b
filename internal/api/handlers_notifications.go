package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RegisterDevice stores a push token for the session user. Registering again
// from the same platform replaces the previous token.
func (handler *Handler) RegisterDevice(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := deviceTokenPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	payload.Platform = strings.ToLower(strings.TrimSpace(payload.Platform))
	payload.Token = strings.TrimSpace(payload.Token)
	if payload.Platform == "" || payload.Token == "" {
		return apiError(c, fiber.StatusBadRequest, "platform and token are required")
	}

	if err := handler.repositories.DeviceTokens.Upsert(user.ID, payload.Platform, payload.Token); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to register device")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// UnregisterDevices drops every push token of the session user, so a user
// signing out of push stops receiving deliveries on all devices.
func (handler *Handler) UnregisterDevices(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repositories.DeviceTokens.DeleteForUser(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to unregister devices")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// CancelNotification cancels one pending notification by its opaque id.
func (handler *Handler) CancelNotification(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	notificationID := strings.TrimSpace(c.Params("id"))
	if notificationID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.scheduler.CancelForUser(notificationID, user.ID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// CancelMyNotifications drops every pending notification of the session
// user, the cancel-all analogue of the client notification API.
func (handler *Handler) CancelMyNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.scheduler.CancelAllForUser(user.ID)
	return c.JSON(fiber.Map{"ok": true})
}
