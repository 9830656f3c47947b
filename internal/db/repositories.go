package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Profiles      *ProfileRepository
	Reminders     *ReminderRepository
	Shares        *ShareRepository
	Notifications *NotificationRepository
	DeviceTokens  *DeviceTokenRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Profiles:      NewProfileRepository(database),
		Reminders:     NewReminderRepository(database),
		Shares:        NewShareRepository(database),
		Notifications: NewNotificationRepository(database),
		DeviceTokens:  NewDeviceTokenRepository(database),
	}
}
