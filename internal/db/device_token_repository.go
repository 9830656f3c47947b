package db

import (
	"time"

	"github.com/terraincognita07/nudge/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeviceTokenRepository struct {
	database *gorm.DB
}

func NewDeviceTokenRepository(database *gorm.DB) *DeviceTokenRepository {
	return &DeviceTokenRepository{database: database}
}

// Upsert stores the token for a user+platform pair, replacing any earlier
// registration from the same device class.
func (repo *DeviceTokenRepository) Upsert(userID uint, platform string, token string) error {
	entry := models.DeviceToken{
		UserID:    userID,
		Platform:  platform,
		Token:     token,
		UpdatedAt: time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
	}).Create(&entry).Error
}

func (repo *DeviceTokenRepository) ListForUser(userID uint) ([]models.DeviceToken, error) {
	tokens := make([]models.DeviceToken, 0)
	if err := repo.database.Where("user_id = ?", userID).Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (repo *DeviceTokenRepository) DeleteForUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.DeviceToken{}).Error
}
