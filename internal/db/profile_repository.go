package db

import (
	"github.com/terraincognita07/nudge/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByUserID(userID uint) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) FindByUserIDs(userIDs []uint) (map[uint]models.Profile, error) {
	profiles := make([]models.Profile, 0, len(userIDs))
	if len(userIDs) == 0 {
		return map[uint]models.Profile{}, nil
	}
	if err := repo.database.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}

	byUser := make(map[uint]models.Profile, len(profiles))
	for _, profile := range profiles {
		byUser[profile.UserID] = profile
	}
	return byUser, nil
}

func (repo *ProfileRepository) UpdateByUserID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(updates).Error
}

// SearchByEmail matches profiles whose email contains the fragment,
// excluding the searching user. Used by the share flow.
func (repo *ProfileRepository) SearchByEmail(fragment string, excludeUserID uint, limit int) ([]models.Profile, error) {
	if limit <= 0 {
		limit = 10
	}
	profiles := make([]models.Profile, 0)
	if err := repo.database.
		Where("email LIKE ? AND user_id <> ?", "%"+fragment+"%", excludeUserID).
		Order("email ASC").
		Limit(limit).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
