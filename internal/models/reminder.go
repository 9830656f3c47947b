package models

import "time"

const (
	RecurringDaily   = "daily"
	RecurringWeekly  = "weekly"
	RecurringMonthly = "monthly"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Reminder struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index:idx_reminders_user_due" json:"user_id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `json:"description"`
	DueAt         time.Time `gorm:"not null;index:idx_reminders_user_due" json:"due_at"`
	MediaURL      string    `json:"media_url,omitempty"`
	MediaType     string    `json:"media_type,omitempty"`
	IsRecurring   bool      `gorm:"not null;default:false" json:"is_recurring"`
	RecurringType string    `json:"recurring_type,omitempty"`
	IsCompleted   bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Owner *Profile `gorm:"-" json:"owner,omitempty"`
}

func IsValidRecurringType(value string) bool {
	switch value {
	case RecurringDaily, RecurringWeekly, RecurringMonthly:
		return true
	default:
		return false
	}
}

func IsValidMediaType(value string) bool {
	return value == MediaTypeImage || value == MediaTypeVideo
}

// NextOccurrence returns the first recurrence of the reminder strictly after
// the given instant. Monthly recurrence relies on AddDate, so a January 31st
// reminder lands on March 2nd/3rd the way the standard library normalizes it.
func (reminder *Reminder) NextOccurrence(after time.Time) (time.Time, bool) {
	if !reminder.IsRecurring || !IsValidRecurringType(reminder.RecurringType) {
		return time.Time{}, false
	}

	next := reminder.DueAt
	for !next.After(after) {
		switch reminder.RecurringType {
		case RecurringDaily:
			next = next.AddDate(0, 0, 1)
		case RecurringWeekly:
			next = next.AddDate(0, 0, 7)
		case RecurringMonthly:
			next = next.AddDate(0, 1, 0)
		}
	}
	return next, true
}
