package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/nudge/internal/db"
	"github.com/terraincognita07/nudge/internal/services"
	"github.com/terraincognita07/nudge/internal/storage"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories    *db.Repositories
	authService     *services.AuthService
	reminderService *services.ReminderService
	shareService    *services.ShareService
	scheduler       *services.Scheduler
	media           *storage.MediaStore
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(
	database *gorm.DB,
	secretKey string,
	location *time.Location,
	cookieSecure bool,
	media *storage.MediaStore,
	scheduler *services.Scheduler,
) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		media:        media,
		scheduler:    scheduler,
	}
	return handler.withDependencies(database)
}
