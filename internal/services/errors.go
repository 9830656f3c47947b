package services

import "errors"

var (
	ErrTitleRequired         = errors.New("title is required")
	ErrRecurringTypeRequired = errors.New("recurring type is required for recurring reminders")
	ErrInvalidRecurringType  = errors.New("invalid recurring type")
	ErrInvalidMediaType      = errors.New("invalid media type")
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrShareNotFound         = errors.New("share not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrNotReminderOwner      = errors.New("owner access required")
	ErrEditNotAllowed        = errors.New("edit access required")
	ErrViewNotAllowed        = errors.New("no access to this reminder")
	ErrSelfShare             = errors.New("cannot share a reminder with its owner")
	ErrAlreadyShared         = errors.New("reminder already shared with this user")
	ErrNotShareParticipant   = errors.New("share belongs to another user")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrNotNotificationOwner  = errors.New("notification belongs to another user")
	ErrEmailExists           = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
