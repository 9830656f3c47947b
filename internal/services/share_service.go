package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/terraincognita07/nudge/internal/models"
	"gorm.io/gorm"
)

type ShareRepository interface {
	Create(share *models.ReminderShare) error
	FindByID(shareID string) (models.ReminderShare, error)
	ListForRecipient(userID uint) ([]models.ReminderShare, error)
	ListForReminder(reminderID uint) ([]models.ReminderShare, error)
	FindForReminderAndRecipient(reminderID uint, userID uint) (models.ReminderShare, bool, error)
	DeleteByID(shareID string) error
}

type ShareReminderRepository interface {
	FindByID(reminderID uint) (models.Reminder, error)
	FindByIDs(reminderIDs []uint) (map[uint]models.Reminder, error)
}

type ShareUserRepository interface {
	ExistsByID(userID uint) (bool, error)
}

type ShareService struct {
	shares    ShareRepository
	reminders ShareReminderRepository
	profiles  ReminderProfileRepository
	users     ShareUserRepository
}

func NewShareService(
	shares ShareRepository,
	reminders ShareReminderRepository,
	profiles ReminderProfileRepository,
	users ShareUserRepository,
) *ShareService {
	return &ShareService{
		shares:    shares,
		reminders: reminders,
		profiles:  profiles,
		users:     users,
	}
}

// Share grants a recipient visibility on the sharer's reminder. The sharer id
// comes from the authenticated session, threaded in by the caller. Sharing
// with yourself or sharing someone else's reminder is rejected, and a second
// share for the same pair is a conflict.
func (service *ShareService) Share(sharerID uint, reminderID uint, recipientID uint, canEdit bool) (models.ReminderShare, error) {
	if sharerID == recipientID {
		return models.ReminderShare{}, ErrSelfShare
	}

	reminder, err := service.reminders.FindByID(reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ReminderShare{}, ErrReminderNotFound
		}
		return models.ReminderShare{}, err
	}
	if reminder.UserID != sharerID {
		return models.ReminderShare{}, ErrNotReminderOwner
	}

	exists, err := service.users.ExistsByID(recipientID)
	if err != nil {
		return models.ReminderShare{}, err
	}
	if !exists {
		return models.ReminderShare{}, ErrUserNotFound
	}

	_, already, err := service.shares.FindForReminderAndRecipient(reminderID, recipientID)
	if err != nil {
		return models.ReminderShare{}, err
	}
	if already {
		return models.ReminderShare{}, ErrAlreadyShared
	}

	share := models.ReminderShare{
		ID:               uuid.NewString(),
		ReminderID:       reminderID,
		SharedByUserID:   sharerID,
		SharedWithUserID: recipientID,
		CanEdit:          canEdit,
	}
	if err := service.shares.Create(&share); err != nil {
		return models.ReminderShare{}, err
	}
	return share, nil
}

// ListForRecipient returns the shares granted to a user, each with the shared
// reminder and both participant profiles attached.
func (service *ShareService) ListForRecipient(userID uint) ([]models.ReminderShare, error) {
	shares, err := service.shares.ListForRecipient(userID)
	if err != nil {
		return nil, err
	}
	return service.attachDetails(shares)
}

// ListForReminder is the owner-side view of who a reminder is shared with.
func (service *ShareService) ListForReminder(reminderID uint, ownerID uint) ([]models.ReminderShare, error) {
	reminder, err := service.reminders.FindByID(reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	if reminder.UserID != ownerID {
		return nil, ErrNotReminderOwner
	}

	shares, err := service.shares.ListForReminder(reminderID)
	if err != nil {
		return nil, err
	}
	return service.attachDetails(shares)
}

// Remove deletes a share. Either side of the grant may revoke it.
func (service *ShareService) Remove(shareID string, actorID uint) error {
	share, err := service.shares.FindByID(shareID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShareNotFound
		}
		return err
	}
	if share.SharedByUserID != actorID && share.SharedWithUserID != actorID {
		return ErrNotShareParticipant
	}
	if err := service.shares.DeleteByID(shareID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShareNotFound
		}
		return err
	}
	return nil
}

func (service *ShareService) attachDetails(shares []models.ReminderShare) ([]models.ReminderShare, error) {
	if len(shares) == 0 {
		return shares, nil
	}

	reminderIDs := make([]uint, 0, len(shares))
	userIDs := make([]uint, 0, len(shares)*2)
	for _, share := range shares {
		reminderIDs = append(reminderIDs, share.ReminderID)
		userIDs = append(userIDs, share.SharedByUserID, share.SharedWithUserID)
	}

	reminders, err := service.reminders.FindByIDs(reminderIDs)
	if err != nil {
		return nil, err
	}
	profiles, err := service.profiles.FindByUserIDs(userIDs)
	if err != nil {
		return nil, err
	}

	for index := range shares {
		if reminder, ok := reminders[shares[index].ReminderID]; ok {
			attached := reminder
			shares[index].Reminder = &attached
		}
		if profile, ok := profiles[shares[index].SharedByUserID]; ok {
			attached := profile
			shares[index].SharedBy = &attached
		}
		if profile, ok := profiles[shares[index].SharedWithUserID]; ok {
			attached := profile
			shares[index].SharedWith = &attached
		}
	}
	return shares, nil
}
