package api

import (
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/nudge/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	profile := models.Profile{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  "Test User",
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.CreatedAt,
	}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return user
}

func bearerHeaderForUser(t *testing.T, handler *Handler, user models.User) string {
	t.Helper()

	token, err := handler.buildToken(&user, time.Hour)
	if err != nil {
		t.Fatalf("build auth token: %v", err)
	}
	return "Bearer " + token
}
