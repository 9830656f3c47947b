package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nudge/internal/services"
)

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reminders, err := handler.reminderService.ListForOwner(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminders")
	}
	return c.JSON(fiber.Map{"reminders": reminders})
}

// GetRemindersOverview serves the home screen: the owner's reminders split
// into upcoming, overdue and completed groups plus counts.
func (handler *Handler) GetRemindersOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reminders, err := handler.reminderService.ListForOwner(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminders")
	}

	partition := services.PartitionReminders(reminders, time.Now().In(handler.location))
	return c.JSON(fiber.Map{
		"groups": partition,
		"counts": partition.Counts(),
	})
}

func (handler *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	month, err := time.ParseInLocation("2006-01", c.Params("month"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month, expected YYYY-MM")
	}

	days, err := handler.reminderService.CalendarMonth(user.ID, month.Year(), month.Month(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load calendar")
	}
	return c.JSON(fiber.Map{"days": days})
}

func (handler *Handler) GetReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	reminder, err := handler.reminderService.Get(reminderID, user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(reminder)
}

func (handler *Handler) CreateReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := reminderPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reminder, err := handler.reminderService.Create(user.ID, services.ReminderInput{
		Title:         payload.Title,
		Description:   payload.Description,
		DueAt:         payload.DueAt,
		MediaURL:      payload.MediaURL,
		MediaType:     payload.MediaType,
		IsRecurring:   payload.IsRecurring,
		RecurringType: payload.RecurringType,
	})
	if err != nil {
		return serviceError(c, err)
	}

	// Scheduling is non-fatal to the create: the row is already persisted.
	if _, err := handler.scheduler.ScheduleForReminder(reminder); err != nil {
		log.Printf("reminders: schedule notification for reminder %d failed: %v", reminder.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func (handler *Handler) UpdateReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	payload := reminderUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reminder, err := handler.reminderService.Update(reminderID, user.ID, services.ReminderUpdate{
		Title:         payload.Title,
		Description:   payload.Description,
		DueAt:         payload.DueAt,
		MediaURL:      payload.MediaURL,
		MediaType:     payload.MediaType,
		IsRecurring:   payload.IsRecurring,
		RecurringType: payload.RecurringType,
		IsCompleted:   payload.IsCompleted,
	})
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := handler.scheduler.Reschedule(reminder); err != nil {
		log.Printf("reminders: reschedule notification for reminder %d failed: %v", reminder.ID, err)
	}

	return c.JSON(reminder)
}

func (handler *Handler) DeleteReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	reminderID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.reminderService.Delete(reminderID, user.ID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
