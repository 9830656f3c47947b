package models

import "time"

// ReminderShare grants another user visibility, and optionally edit rights,
// on a single reminder.
type ReminderShare struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	ReminderID       uint      `gorm:"not null;uniqueIndex:uidx_share_pair" json:"reminder_id"`
	SharedByUserID   uint      `gorm:"not null;index" json:"shared_by_user_id"`
	SharedWithUserID uint      `gorm:"not null;uniqueIndex:uidx_share_pair" json:"shared_with_user_id"`
	CanEdit          bool      `gorm:"not null;default:false" json:"can_edit"`
	CreatedAt        time.Time `json:"created_at"`

	Reminder   *Reminder `gorm:"-" json:"reminder,omitempty"`
	SharedBy   *Profile  `gorm:"-" json:"shared_by,omitempty"`
	SharedWith *Profile  `gorm:"-" json:"shared_with,omitempty"`
}
