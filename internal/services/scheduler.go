package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/nudge/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.ScheduledNotification) error
	FindByID(notificationID string) (models.ScheduledNotification, error)
	ListDuePending(now time.Time, limit int) ([]models.ScheduledNotification, error)
	UpdateStatus(notificationID string, status string) error
	CancelPendingByReminder(reminderID uint) error
	CancelAllPendingForUser(userID uint) error
}

type DeviceTokenLister interface {
	ListForUser(userID uint) ([]models.DeviceToken, error)
}

type SchedulerReminderRepository interface {
	FindByID(reminderID uint) (models.Reminder, error)
	UpdateByID(reminderID uint, updates map[string]any) error
}

// SchedulerOptions tunes the delivery loop and the push gateway.
type SchedulerOptions struct {
	PushEnabled  bool
	PushEndpoint string
	PushTimeout  time.Duration
	Interval     time.Duration
	Location     *time.Location
}

// Scheduler maps reminder due times to push notifications: it persists
// pending one-shot rows, delivers the due ones over HTTP on a ticker, and
// rolls recurring reminders forward to their next occurrence after firing.
type Scheduler struct {
	notifications NotificationRepository
	tokens        DeviceTokenLister
	reminders     SchedulerReminderRepository
	options       SchedulerOptions
	client        *http.Client
}

func NewScheduler(
	notifications NotificationRepository,
	tokens DeviceTokenLister,
	reminders SchedulerReminderRepository,
	options SchedulerOptions,
) *Scheduler {
	if options.Interval <= 0 {
		options.Interval = 30 * time.Second
	}
	if options.PushTimeout <= 0 {
		options.PushTimeout = 8 * time.Second
	}
	if options.Location == nil {
		options.Location = time.UTC
	}
	return &Scheduler{
		notifications: notifications,
		tokens:        tokens,
		reminders:     reminders,
		options:       options,
		client:        &http.Client{Timeout: options.PushTimeout},
	}
}

// Schedule persists a one-shot notification and returns its opaque id.
// A due time that is not strictly in the future is a silent no-op returning
// an empty id, matching the client-side scheduling contract.
func (scheduler *Scheduler) Schedule(reminderID uint, userID uint, title string, body string, fireAt time.Time, imageURL string) (string, error) {
	if !fireAt.After(time.Now()) {
		return "", nil
	}

	notification := models.ScheduledNotification{
		ID:         uuid.NewString(),
		ReminderID: reminderID,
		UserID:     userID,
		Title:      title,
		Body:       body,
		ImageURL:   imageURL,
		FireAt:     fireAt,
		Status:     models.NotificationPending,
	}
	if err := scheduler.notifications.Create(&notification); err != nil {
		return "", err
	}
	return notification.ID, nil
}

// ScheduleForReminder derives the notification content from the reminder
// itself. Completed reminders are never queued. Only image attachments ride
// along; video previews are not pushed.
func (scheduler *Scheduler) ScheduleForReminder(reminder models.Reminder) (string, error) {
	if reminder.IsCompleted {
		return "", nil
	}
	imageURL := ""
	if reminder.MediaType == models.MediaTypeImage {
		imageURL = reminder.MediaURL
	}
	return scheduler.Schedule(reminder.ID, reminder.UserID, reminder.Title, reminder.Description, reminder.DueAt, imageURL)
}

// Reschedule replaces any pending notifications of the reminder with a fresh
// one for its current due time.
func (scheduler *Scheduler) Reschedule(reminder models.Reminder) (string, error) {
	if err := scheduler.notifications.CancelPendingByReminder(reminder.ID); err != nil {
		return "", err
	}
	return scheduler.ScheduleForReminder(reminder)
}

// CancelForUser cancels a single notification by its opaque id. Only the
// recipient may cancel; a notification that already reached a terminal
// status reports not-found rather than flipping back.
func (scheduler *Scheduler) CancelForUser(notificationID string, userID uint) error {
	notification, err := scheduler.notifications.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.UserID != userID {
		return ErrNotNotificationOwner
	}
	if notification.Status != models.NotificationPending {
		return ErrNotificationNotFound
	}
	if err := scheduler.notifications.UpdateStatus(notificationID, models.NotificationCancelled); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (scheduler *Scheduler) CancelPendingByReminder(reminderID uint) error {
	return scheduler.notifications.CancelPendingByReminder(reminderID)
}

func (scheduler *Scheduler) CancelAllForUser(userID uint) {
	if err := scheduler.notifications.CancelAllPendingForUser(userID); err != nil {
		log.Printf("scheduler: cancel all notifications for user %d failed: %v", userID, err)
	}
}

// Start runs the delivery loop until the context is cancelled.
func (scheduler *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(scheduler.options.Interval)
	go func() {
		defer ticker.Stop()

		scheduler.deliverDue(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				scheduler.deliverDue(ctx)
			}
		}
	}()
}

func (scheduler *Scheduler) deliverDue(ctx context.Context) {
	now := time.Now().In(scheduler.options.Location)
	due, err := scheduler.notifications.ListDuePending(now, 100)
	if err != nil {
		log.Printf("scheduler: fetch due notifications failed: %v", err)
		return
	}

	for _, notification := range due {
		if ctx.Err() != nil {
			return
		}

		status := models.NotificationSent
		if err := scheduler.deliver(ctx, notification); err != nil {
			log.Printf("scheduler: deliver notification %s failed: %v", notification.ID, err)
			status = models.NotificationFailed
		}
		if err := scheduler.notifications.UpdateStatus(notification.ID, status); err != nil {
			log.Printf("scheduler: mark notification %s %s failed: %v", notification.ID, status, err)
			continue
		}

		scheduler.rollRecurring(notification, now)
	}
}

func (scheduler *Scheduler) deliver(ctx context.Context, notification models.ScheduledNotification) error {
	tokens, err := scheduler.tokens.ListForUser(notification.UserID)
	if err != nil {
		return fmt.Errorf("list device tokens: %w", err)
	}
	if !scheduler.options.PushEnabled || len(tokens) == 0 {
		return nil
	}

	// Every registered device gets an attempt; one dead token must not
	// silence the user's other devices.
	var pushErrs []error
	for _, token := range tokens {
		if err := scheduler.push(ctx, token.Token, notification); err != nil {
			pushErrs = append(pushErrs, err)
		}
	}
	return errors.Join(pushErrs...)
}

type pushMessage struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data"`
	Image string         `json:"image,omitempty"`
}

func (scheduler *Scheduler) push(ctx context.Context, deviceToken string, notification models.ScheduledNotification) error {
	message := pushMessage{
		To:    deviceToken,
		Title: notification.Title,
		Body:  notification.Body,
		Data:  map[string]any{"reminderId": notification.ReminderID},
		Image: notification.ImageURL,
	}
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("encode push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, scheduler.options.PushEndpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := scheduler.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push gateway status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// rollRecurring advances a recurring reminder past the fired occurrence and
// queues the next one. One-shot reminders are left alone.
func (scheduler *Scheduler) rollRecurring(notification models.ScheduledNotification, now time.Time) {
	reminder, err := scheduler.reminders.FindByID(notification.ReminderID)
	if err != nil {
		return
	}

	next, ok := reminder.NextOccurrence(now)
	if !ok {
		return
	}

	if err := scheduler.reminders.UpdateByID(reminder.ID, map[string]any{
		"due_at":     next,
		"updated_at": time.Now(),
	}); err != nil {
		log.Printf("scheduler: advance recurring reminder %d failed: %v", reminder.ID, err)
		return
	}

	reminder.DueAt = next
	if _, err := scheduler.ScheduleForReminder(reminder); err != nil {
		log.Printf("scheduler: requeue recurring reminder %d failed: %v", reminder.ID, err)
	}
}
