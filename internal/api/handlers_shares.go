package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ShareReminder grants another user access to one of the session user's
// reminders. The sharer id always comes from the session, never the payload.
func (handler *Handler) ShareReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	payload := sharePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.SharedWithUserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "shared_with_user_id is required")
	}

	share, err := handler.shareService.Share(user.ID, reminderID, payload.SharedWithUserID, payload.CanEdit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(share)
}

func (handler *Handler) ListReminderShares(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	shares, err := handler.shareService.ListForReminder(reminderID, user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"shares": shares})
}

// ListSharedWithMe returns reminders other users have shared to the session
// user, with the reminder and both participant profiles attached.
func (handler *Handler) ListSharedWithMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	shares, err := handler.shareService.ListForRecipient(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load shares")
	}
	return c.JSON(fiber.Map{"shares": shares})
}

func (handler *Handler) RemoveShare(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	shareID := strings.TrimSpace(c.Params("id"))
	if shareID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.shareService.Remove(shareID, user.ID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
