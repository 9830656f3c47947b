package api

import "time"

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	FullName string `json:"full_name" form:"full_name"`
	Remember bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

type profilePayload struct {
	FullName  string `json:"full_name" form:"full_name"`
	AvatarURL string `json:"avatar_url" form:"avatar_url"`
}

type reminderPayload struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DueAt         time.Time `json:"due_at"`
	MediaURL      string    `json:"media_url"`
	MediaType     string    `json:"media_type"`
	IsRecurring   bool      `json:"is_recurring"`
	RecurringType string    `json:"recurring_type"`
}

type reminderUpdatePayload struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	DueAt         *time.Time `json:"due_at"`
	MediaURL      *string    `json:"media_url"`
	MediaType     *string    `json:"media_type"`
	IsRecurring   *bool      `json:"is_recurring"`
	RecurringType *string    `json:"recurring_type"`
	IsCompleted   *bool      `json:"is_completed"`
}

type sharePayload struct {
	SharedWithUserID uint `json:"shared_with_user_id"`
	CanEdit          bool `json:"can_edit"`
}

type deviceTokenPayload struct {
	Platform string `json:"platform"`
	Token    string `json:"token"`
}

type deleteMediaPayload struct {
	MediaURL string `json:"media_url"`
}
