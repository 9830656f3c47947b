package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetMyProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.authService.ProfileByUserID(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateMyProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	profile, err := handler.authService.UpdateProfile(user.ID, payload.FullName, payload.AvatarURL)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

// SearchUsers backs the share form's recipient lookup.
func (handler *Handler) SearchUsers(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	results, err := handler.authService.SearchUsers(c.Query("email"), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "search failed")
	}
	return c.JSON(fiber.Map{"results": results})
}
