package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/nudge/internal/models"
)

type ReminderInput struct {
	Title         string
	Description   string
	DueAt         time.Time
	MediaURL      string
	MediaType     string
	IsRecurring   bool
	RecurringType string
}

// ReminderUpdate carries a partial edit; nil fields are left untouched.
type ReminderUpdate struct {
	Title         *string
	Description   *string
	DueAt         *time.Time
	MediaURL      *string
	MediaType     *string
	IsRecurring   *bool
	RecurringType *string
	IsCompleted   *bool
}

// ValidateReminderInput normalizes and checks a full reminder payload.
// The recurring type is meaningful if and only if the recurring flag is set:
// a stray type on a non-recurring reminder is cleared rather than rejected,
// while a recurring reminder without a type is an error.
func ValidateReminderInput(input *ReminderInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.MediaURL = strings.TrimSpace(input.MediaURL)
	input.MediaType = strings.ToLower(strings.TrimSpace(input.MediaType))
	input.RecurringType = strings.ToLower(strings.TrimSpace(input.RecurringType))

	if input.Title == "" {
		return ErrTitleRequired
	}

	if input.IsRecurring {
		if input.RecurringType == "" {
			return ErrRecurringTypeRequired
		}
		if !models.IsValidRecurringType(input.RecurringType) {
			return ErrInvalidRecurringType
		}
	} else {
		input.RecurringType = ""
	}

	if input.MediaURL != "" && !models.IsValidMediaType(input.MediaType) {
		return ErrInvalidMediaType
	}
	if input.MediaURL == "" {
		input.MediaType = ""
	}

	return nil
}

// apply merges a partial update into an existing reminder and re-validates
// the merged state through the same rules as creation.
func (update ReminderUpdate) apply(reminder models.Reminder) (ReminderInput, error) {
	merged := ReminderInput{
		Title:         reminder.Title,
		Description:   reminder.Description,
		DueAt:         reminder.DueAt,
		MediaURL:      reminder.MediaURL,
		MediaType:     reminder.MediaType,
		IsRecurring:   reminder.IsRecurring,
		RecurringType: reminder.RecurringType,
	}

	if update.Title != nil {
		merged.Title = *update.Title
	}
	if update.Description != nil {
		merged.Description = *update.Description
	}
	if update.DueAt != nil {
		merged.DueAt = *update.DueAt
	}
	if update.MediaURL != nil {
		merged.MediaURL = *update.MediaURL
	}
	if update.MediaType != nil {
		merged.MediaType = *update.MediaType
	}
	if update.IsRecurring != nil {
		merged.IsRecurring = *update.IsRecurring
	}
	if update.RecurringType != nil {
		merged.RecurringType = *update.RecurringType
	}

	if err := ValidateReminderInput(&merged); err != nil {
		return ReminderInput{}, err
	}
	return merged, nil
}
