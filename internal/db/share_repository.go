package db

import (
	"github.com/terraincognita07/nudge/internal/models"
	"gorm.io/gorm"
)

type ShareRepository struct {
	database *gorm.DB
}

func NewShareRepository(database *gorm.DB) *ShareRepository {
	return &ShareRepository{database: database}
}

func (repo *ShareRepository) Create(share *models.ReminderShare) error {
	return repo.database.Create(share).Error
}

func (repo *ShareRepository) FindByID(shareID string) (models.ReminderShare, error) {
	var share models.ReminderShare
	if err := repo.database.Where("id = ?", shareID).First(&share).Error; err != nil {
		return models.ReminderShare{}, err
	}
	return share, nil
}

func (repo *ShareRepository) ListForRecipient(userID uint) ([]models.ReminderShare, error) {
	shares := make([]models.ReminderShare, 0)
	if err := repo.database.
		Where("shared_with_user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

func (repo *ShareRepository) ListForReminder(reminderID uint) ([]models.ReminderShare, error) {
	shares := make([]models.ReminderShare, 0)
	if err := repo.database.
		Where("reminder_id = ?", reminderID).
		Order("created_at ASC, id ASC").
		Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

func (repo *ShareRepository) FindForReminderAndRecipient(reminderID uint, userID uint) (models.ReminderShare, bool, error) {
	var share models.ReminderShare
	result := repo.database.
		Where("reminder_id = ? AND shared_with_user_id = ?", reminderID, userID).
		Limit(1).
		Find(&share)
	if result.Error != nil {
		return models.ReminderShare{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ReminderShare{}, false, nil
	}
	return share, true, nil
}

func (repo *ShareRepository) DeleteByID(shareID string) error {
	result := repo.database.Where("id = ?", shareID).Delete(&models.ReminderShare{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *ShareRepository) DeleteByReminderID(reminderID uint) error {
	return repo.database.Where("reminder_id = ?", reminderID).Delete(&models.ReminderShare{}).Error
}
