package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nudge/internal/models"
)

const (
	authCookieName = "nudge_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
