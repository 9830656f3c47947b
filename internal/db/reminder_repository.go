package db

import (
	"time"

	"github.com/terraincognita07/nudge/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) ListByOwner(userID uint) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("due_at ASC, id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepository) ListByOwnerRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("user_id = ? AND due_at >= ? AND due_at < ?", userID, fromStart, toEnd).
		Order("due_at ASC, id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepository) FindByID(reminderID uint) (models.Reminder, error) {
	var reminder models.Reminder
	if err := repo.database.First(&reminder, reminderID).Error; err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

func (repo *ReminderRepository) FindByIDs(reminderIDs []uint) (map[uint]models.Reminder, error) {
	if len(reminderIDs) == 0 {
		return map[uint]models.Reminder{}, nil
	}
	reminders := make([]models.Reminder, 0, len(reminderIDs))
	if err := repo.database.Where("id IN ?", reminderIDs).Find(&reminders).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Reminder, len(reminders))
	for _, reminder := range reminders {
		byID[reminder.ID] = reminder
	}
	return byID, nil
}

func (repo *ReminderRepository) Create(reminder *models.Reminder) error {
	return repo.database.Create(reminder).Error
}

func (repo *ReminderRepository) UpdateByID(reminderID uint, updates map[string]any) error {
	result := repo.database.Model(&models.Reminder{}).Where("id = ?", reminderID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByID removes the row and reports gorm.ErrRecordNotFound when the id
// is absent; repeated deletes are deliberately not silent successes.
func (repo *ReminderRepository) DeleteByID(reminderID uint) error {
	result := repo.database.Delete(&models.Reminder{}, reminderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
