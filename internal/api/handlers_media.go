package api

import (
	"github.com/gofiber/fiber/v2"
)

// UploadMedia stores a multipart file in the session user's namespace and
// returns its public URL. A second upload with the same name overwrites.
func (handler *Handler) UploadMedia(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "file is required")
	}

	source, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "failed to read upload")
	}
	defer source.Close()

	publicURL, err := handler.media.Save(user.ID, fileHeader.Filename, source)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": publicURL})
}

// DeleteMedia removes an object by its public URL, scoped to the session
// user's namespace.
func (handler *Handler) DeleteMedia(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := deleteMediaPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.MediaURL == "" {
		return apiError(c, fiber.StatusBadRequest, "media_url is required")
	}

	if err := handler.media.DeleteByURL(user.ID, payload.MediaURL); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
