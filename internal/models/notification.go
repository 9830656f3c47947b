package models

import "time"

const (
	NotificationPending   = "pending"
	NotificationSent      = "sent"
	NotificationFailed    = "failed"
	NotificationCancelled = "cancelled"
)

// ScheduledNotification is a one-shot push keyed by an opaque id, carrying
// the reminder id as payload for client deep-linking.
type ScheduledNotification struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	ReminderID uint      `gorm:"not null;index" json:"reminder_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Title      string    `gorm:"not null" json:"title"`
	Body       string    `json:"body"`
	ImageURL   string    `json:"image_url,omitempty"`
	FireAt     time.Time `gorm:"not null" json:"fire_at"`
	Status     string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DeviceToken stores a client push token, one per user+platform,
// last write wins.
type DeviceToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_device_user_platform" json:"user_id"`
	Platform  string    `gorm:"not null;uniqueIndex:uidx_device_user_platform" json:"platform"`
	Token     string    `gorm:"not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
