package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/nudge/internal/models"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	CreateWithProfile(user *models.User, profile *models.Profile) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthProfileRepository interface {
	FindByUserID(userID uint) (models.Profile, error)
	UpdateByUserID(userID uint, updates map[string]any) error
	SearchByEmail(fragment string, excludeUserID uint, limit int) ([]models.Profile, error)
}

type AuthService struct {
	users    AuthUserRepository
	profiles AuthProfileRepository
}

func NewAuthService(users AuthUserRepository, profiles AuthProfileRepository) *AuthService {
	return &AuthService{users: users, profiles: profiles}
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email)
}

// CreateAccount inserts the user plus its profile row. Sign-up is the only
// place profiles are created.
func (service *AuthService) CreateAccount(user *models.User, fullName string) (models.Profile, error) {
	profile := models.Profile{
		FullName:  strings.TrimSpace(fullName),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.CreatedAt,
	}
	if err := service.users.CreateWithProfile(user, &profile); err != nil {
		if isDuplicateEmail(err) {
			return models.Profile{}, ErrEmailExists
		}
		return models.Profile{}, err
	}
	return profile, nil
}

// isDuplicateEmail recognizes the unique-index violation raced in between
// the pre-insert existence check and the insert itself.
func isDuplicateEmail(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: users.email")
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) ProfileByUserID(userID uint) (models.Profile, error) {
	profile, err := service.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrUserNotFound
		}
		return models.Profile{}, err
	}
	return profile, nil
}

func (service *AuthService) UpdateProfile(userID uint, fullName string, avatarURL string) (models.Profile, error) {
	updates := map[string]any{
		"full_name":  strings.TrimSpace(fullName),
		"avatar_url": strings.TrimSpace(avatarURL),
		"updated_at": time.Now(),
	}
	if err := service.profiles.UpdateByUserID(userID, updates); err != nil {
		return models.Profile{}, err
	}
	return service.ProfileByUserID(userID)
}

// SearchUsers finds share candidates by email fragment. The requesting user
// is excluded so the share form never offers self-sharing.
func (service *AuthService) SearchUsers(fragment string, requesterID uint) ([]models.Profile, error) {
	trimmed := strings.ToLower(strings.TrimSpace(fragment))
	if trimmed == "" {
		return []models.Profile{}, nil
	}
	return service.profiles.SearchByEmail(trimmed, requesterID, 10)
}

func (service *AuthService) UpdatePassword(userID uint, passwordHash string) error {
	return service.users.UpdatePassword(userID, passwordHash)
}
