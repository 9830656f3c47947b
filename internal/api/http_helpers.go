package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nudge/internal/services"
	"github.com/terraincognita07/nudge/internal/storage"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the domain error taxonomy onto HTTP statuses:
// missing rows to 404, access denials to 403, validation to 400,
// duplicates to 409, anything unexpected to 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrReminderNotFound),
		errors.Is(err, services.ErrShareNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, storage.ErrObjectNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotReminderOwner),
		errors.Is(err, services.ErrEditNotAllowed),
		errors.Is(err, services.ErrViewNotAllowed),
		errors.Is(err, services.ErrNotShareParticipant),
		errors.Is(err, services.ErrNotNotificationOwner):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrRecurringTypeRequired),
		errors.Is(err, services.ErrInvalidRecurringType),
		errors.Is(err, services.ErrInvalidMediaType),
		errors.Is(err, services.ErrSelfShare),
		errors.Is(err, storage.ErrEmptyFileName),
		errors.Is(err, storage.ErrInvalidMediaURL):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAlreadyShared),
		errors.Is(err, services.ErrEmailExists):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
