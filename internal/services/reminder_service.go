package services

import (
	"errors"
	"log"
	"time"

	"github.com/terraincognita07/nudge/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository interface {
	ListByOwner(userID uint) ([]models.Reminder, error)
	ListByOwnerRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Reminder, error)
	FindByID(reminderID uint) (models.Reminder, error)
	Create(reminder *models.Reminder) error
	UpdateByID(reminderID uint, updates map[string]any) error
	DeleteByID(reminderID uint) error
}

type ReminderShareRepository interface {
	FindForReminderAndRecipient(reminderID uint, userID uint) (models.ReminderShare, bool, error)
	DeleteByReminderID(reminderID uint) error
}

type ReminderProfileRepository interface {
	FindByUserID(userID uint) (models.Profile, error)
	FindByUserIDs(userIDs []uint) (map[uint]models.Profile, error)
}

type ReminderNotificationCanceller interface {
	CancelPendingByReminder(reminderID uint) error
}

type ReminderMediaRemover interface {
	DeleteByURL(userID uint, mediaURL string) error
}

type ReminderService struct {
	reminders     ReminderRepository
	shares        ReminderShareRepository
	profiles      ReminderProfileRepository
	notifications ReminderNotificationCanceller
	media         ReminderMediaRemover
}

func NewReminderService(
	reminders ReminderRepository,
	shares ReminderShareRepository,
	profiles ReminderProfileRepository,
	notifications ReminderNotificationCanceller,
	media ReminderMediaRemover,
) *ReminderService {
	return &ReminderService{
		reminders:     reminders,
		shares:        shares,
		profiles:      profiles,
		notifications: notifications,
		media:         media,
	}
}

func (service *ReminderService) Create(ownerID uint, input ReminderInput) (models.Reminder, error) {
	if err := ValidateReminderInput(&input); err != nil {
		return models.Reminder{}, err
	}

	reminder := models.Reminder{
		UserID:        ownerID,
		Title:         input.Title,
		Description:   input.Description,
		DueAt:         input.DueAt,
		MediaURL:      input.MediaURL,
		MediaType:     input.MediaType,
		IsRecurring:   input.IsRecurring,
		RecurringType: input.RecurringType,
	}
	if err := service.reminders.Create(&reminder); err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

// ListForOwner returns the user's reminders ascending by due timestamp with
// the owner profile attached to each row.
func (service *ReminderService) ListForOwner(ownerID uint) ([]models.Reminder, error) {
	reminders, err := service.reminders.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	profile, err := service.profiles.FindByUserID(ownerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		for index := range reminders {
			owner := profile
			reminders[index].Owner = &owner
		}
	}
	return reminders, nil
}

// Get loads a reminder the viewer is allowed to see: the owner, or any user
// holding a share on it.
func (service *ReminderService) Get(reminderID uint, viewerID uint) (models.Reminder, error) {
	reminder, err := service.reminders.FindByID(reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reminder{}, ErrReminderNotFound
		}
		return models.Reminder{}, err
	}

	if reminder.UserID != viewerID {
		_, shared, err := service.shares.FindForReminderAndRecipient(reminderID, viewerID)
		if err != nil {
			return models.Reminder{}, err
		}
		if !shared {
			return models.Reminder{}, ErrViewNotAllowed
		}
	}

	if profile, err := service.profiles.FindByUserID(reminder.UserID); err == nil {
		reminder.Owner = &profile
	}
	return reminder, nil
}

// Update applies a partial edit. The owner can always edit; a share recipient
// needs a can-edit grant. Concurrent edits are last-write-wins.
func (service *ReminderService) Update(reminderID uint, editorID uint, update ReminderUpdate) (models.Reminder, error) {
	reminder, err := service.reminders.FindByID(reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reminder{}, ErrReminderNotFound
		}
		return models.Reminder{}, err
	}

	if reminder.UserID != editorID {
		share, shared, err := service.shares.FindForReminderAndRecipient(reminderID, editorID)
		if err != nil {
			return models.Reminder{}, err
		}
		if !shared {
			return models.Reminder{}, ErrViewNotAllowed
		}
		if !share.CanEdit {
			return models.Reminder{}, ErrEditNotAllowed
		}
	}

	merged, err := update.apply(reminder)
	if err != nil {
		return models.Reminder{}, err
	}

	updates := map[string]any{
		"title":          merged.Title,
		"description":    merged.Description,
		"due_at":         merged.DueAt,
		"media_url":      merged.MediaURL,
		"media_type":     merged.MediaType,
		"is_recurring":   merged.IsRecurring,
		"recurring_type": merged.RecurringType,
		"updated_at":     time.Now(),
	}
	if update.IsCompleted != nil {
		updates["is_completed"] = *update.IsCompleted
	}

	if err := service.reminders.UpdateByID(reminderID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reminder{}, ErrReminderNotFound
		}
		return models.Reminder{}, err
	}
	return service.reminders.FindByID(reminderID)
}

// Delete removes a reminder the actor owns, cancelling its pending
// notifications, dropping its shares and removing the attached media object.
// Media and notification cleanup are best-effort: the row deletion is the
// operation the caller is waiting on.
func (service *ReminderService) Delete(reminderID uint, actorID uint) error {
	reminder, err := service.reminders.FindByID(reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReminderNotFound
		}
		return err
	}
	if reminder.UserID != actorID {
		return ErrNotReminderOwner
	}

	if err := service.notifications.CancelPendingByReminder(reminderID); err != nil {
		log.Printf("reminders: cancel notifications for reminder %d failed: %v", reminderID, err)
	}
	if err := service.shares.DeleteByReminderID(reminderID); err != nil {
		return err
	}
	if reminder.MediaURL != "" {
		if err := service.media.DeleteByURL(reminder.UserID, reminder.MediaURL); err != nil {
			log.Printf("reminders: remove media for reminder %d failed: %v", reminderID, err)
		}
	}

	if err := service.reminders.DeleteByID(reminderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReminderNotFound
		}
		return err
	}
	return nil
}
