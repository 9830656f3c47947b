package api

import (
	"github.com/terraincognita07/nudge/internal/db"
	"github.com/terraincognita07/nudge/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, handler.repositories.Profiles)
	handler.reminderService = services.NewReminderService(
		handler.repositories.Reminders,
		handler.repositories.Shares,
		handler.repositories.Profiles,
		handler.repositories.Notifications,
		handler.media,
	)
	handler.shareService = services.NewShareService(
		handler.repositories.Shares,
		handler.repositories.Reminders,
		handler.repositories.Profiles,
		handler.repositories.Users,
	)
	return handler
}
