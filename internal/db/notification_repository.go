package db

import (
	"time"

	"github.com/terraincognita07/nudge/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) Create(notification *models.ScheduledNotification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) FindByID(notificationID string) (models.ScheduledNotification, error) {
	var notification models.ScheduledNotification
	if err := repo.database.Where("id = ?", notificationID).First(&notification).Error; err != nil {
		return models.ScheduledNotification{}, err
	}
	return notification, nil
}

func (repo *NotificationRepository) ListDuePending(now time.Time, limit int) ([]models.ScheduledNotification, error) {
	if limit <= 0 {
		limit = 100
	}
	notifications := make([]models.ScheduledNotification, 0)
	if err := repo.database.
		Where("status = ? AND fire_at <= ?", models.NotificationPending, now).
		Order("fire_at ASC, id ASC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) UpdateStatus(notificationID string, status string) error {
	result := repo.database.Model(&models.ScheduledNotification{}).
		Where("id = ?", notificationID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CancelPendingByReminder marks every pending row of a reminder cancelled.
// Rows that already fired keep their terminal status.
func (repo *NotificationRepository) CancelPendingByReminder(reminderID uint) error {
	return repo.database.Model(&models.ScheduledNotification{}).
		Where("reminder_id = ? AND status = ?", reminderID, models.NotificationPending).
		Update("status", models.NotificationCancelled).Error
}

func (repo *NotificationRepository) CancelAllPendingForUser(userID uint) error {
	return repo.database.Model(&models.ScheduledNotification{}).
		Where("user_id = ? AND status = ?", userID, models.NotificationPending).
		Update("status", models.NotificationCancelled).Error
}
