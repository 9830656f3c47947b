package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/terraincognita07/nudge/internal/models"
)

func TestCreateReminderAndFetchListScenario(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "payrent@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	due := time.Now().UTC().AddDate(0, 0, 1).Truncate(time.Hour).Add(9 * time.Hour)
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":  "Pay rent",
		"due_at": due.Format(time.RFC3339),
	}, auth), http.StatusCreated)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/reminders", nil, auth), http.StatusOK)
	reminders, ok := body["reminders"].([]any)
	if !ok || len(reminders) != 1 {
		t.Fatalf("expected exactly one reminder, got %v", body["reminders"])
	}

	entry := reminders[0].(map[string]any)
	if entry["title"] != "Pay rent" {
		t.Fatalf("expected title preserved, got %v", entry["title"])
	}
	if entry["is_completed"] != false {
		t.Fatalf("expected new reminder to be incomplete, got %v", entry["is_completed"])
	}
	storedDue, err := time.Parse(time.RFC3339, entry["due_at"].(string))
	if err != nil {
		t.Fatalf("parse stored due timestamp: %v", err)
	}
	if !storedDue.Equal(due) {
		t.Fatalf("expected due timestamp %v, got %v", due, storedDue)
	}
}

func TestListRemindersSortedByDueAndScopedToOwner(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	owner := createTestUser(t, database, "owner-sort@example.com", "StrongPass1")
	other := createTestUser(t, database, "other-sort@example.com", "StrongPass1")
	ownerAuth := bearerHeaderForUser(t, handler, owner)
	otherAuth := bearerHeaderForUser(t, handler, other)

	base := time.Now().UTC().Add(time.Hour)
	for offset, title := range map[int]string{3: "third", 1: "first", 2: "second"} {
		doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
			"title":  title,
			"due_at": base.AddDate(0, 0, offset).Format(time.RFC3339),
		}, ownerAuth), http.StatusCreated)
	}
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":  "foreign",
		"due_at": base.Format(time.RFC3339),
	}, otherAuth), http.StatusCreated)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/reminders", nil, ownerAuth), http.StatusOK)
	reminders := body["reminders"].([]any)
	if len(reminders) != 3 {
		t.Fatalf("expected three reminders for owner, got %d", len(reminders))
	}

	wantOrder := []string{"first", "second", "third"}
	for index, want := range wantOrder {
		entry := reminders[index].(map[string]any)
		if entry["title"] != want {
			t.Fatalf("expected position %d to be %q, got %v", index, want, entry["title"])
		}
		if entry["title"] == "foreign" {
			t.Fatalf("reminder owned by another user leaked into the list")
		}
	}
}

func TestCreateReminderRejectsEmptyTitle(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "empty-title@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":  "   ",
		"due_at": time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
	}, auth), http.StatusBadRequest)

	if readAPIError(t, body) != "title is required" {
		t.Fatalf("expected title validation error, got %q", readAPIError(t, body))
	}
}

func TestCreateReminderClearsRecurringTypeWhenFlagUnset(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "norecur@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	created := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":          "One shot",
		"due_at":         time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
		"is_recurring":   false,
		"recurring_type": "daily",
	}, auth), http.StatusCreated)

	path := fmt.Sprintf("/api/reminders/%v", int(created["id"].(float64)))
	fetched := doJSON(t, app, jsonRequest(t, http.MethodGet, path, nil, auth), http.StatusOK)
	if value, present := fetched["recurring_type"]; present && value != "" {
		t.Fatalf("expected recurring type absent after round-trip, got %v", value)
	}
}

func TestCreateRecurringReminderRequiresType(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "recur-required@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":        "Water plants",
		"due_at":       time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
		"is_recurring": true,
	}, auth), http.StatusBadRequest)

	if readAPIError(t, body) != "recurring type is required for recurring reminders" {
		t.Fatalf("expected recurring type validation error, got %q", readAPIError(t, body))
	}
}

func TestDeleteMissingReminderReturnsNotFound(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "delete-missing@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	body := doJSON(t, app, jsonRequest(t, http.MethodDelete, "/api/reminders/9999", nil, auth), http.StatusNotFound)
	if readAPIError(t, body) != "reminder not found" {
		t.Fatalf("expected not found error, got %q", readAPIError(t, body))
	}
}

func TestCompletedReminderMovesToCompletedGroup(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "complete@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	created := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":  "Finish report",
		"due_at": time.Now().UTC().Add(2 * time.Hour).Format(time.RFC3339),
	}, auth), http.StatusCreated)
	path := fmt.Sprintf("/api/reminders/%v", int(created["id"].(float64)))

	doJSON(t, app, jsonRequest(t, http.MethodPatch, path, map[string]any{
		"is_completed": true,
	}, auth), http.StatusOK)

	overview := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/reminders/overview", nil, auth), http.StatusOK)
	groups := overview["groups"].(map[string]any)

	completed := groups["completed"].([]any)
	if len(completed) != 1 {
		t.Fatalf("expected one completed reminder, got %d", len(completed))
	}
	if len(groups["upcoming"].([]any)) != 0 || len(groups["overdue"].([]any)) != 0 {
		t.Fatalf("completed reminder still present in upcoming/overdue groups: %v", groups)
	}

	counts := overview["counts"].(map[string]any)
	if counts["completed"].(float64) != 1 {
		t.Fatalf("expected completed count 1, got %v", counts["completed"])
	}
}

func TestCreateFutureReminderQueuesNotification(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "queue@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	created := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":  "Dentist",
		"due_at": time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
	}, auth), http.StatusCreated)
	reminderID := uint(created["id"].(float64))

	var pending int64
	if err := database.Model(&models.ScheduledNotification{}).
		Where("reminder_id = ? AND status = ?", reminderID, models.NotificationPending).
		Count(&pending).Error; err != nil {
		t.Fatalf("count pending notifications: %v", err)
	}
	if pending != 1 {
		t.Fatalf("expected one pending notification for future reminder, got %d", pending)
	}
}

func TestCreatePastReminderSchedulesNothing(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "past@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	created := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":  "Missed it",
		"due_at": time.Now().UTC().Add(-time.Hour).Format(time.RFC3339),
	}, auth), http.StatusCreated)
	reminderID := uint(created["id"].(float64))

	var total int64
	if err := database.Model(&models.ScheduledNotification{}).
		Where("reminder_id = ?", reminderID).
		Count(&total).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no notification rows for past reminder, got %d", total)
	}
}

func TestDeleteReminderCancelsNotificationsAndShares(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	owner := createTestUser(t, database, "cascade-owner@example.com", "StrongPass1")
	recipient := createTestUser(t, database, "cascade-recipient@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, owner)

	created := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":  "Shared and queued",
		"due_at": time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339),
	}, auth), http.StatusCreated)
	reminderID := uint(created["id"].(float64))
	path := fmt.Sprintf("/api/reminders/%d", reminderID)

	doJSON(t, app, jsonRequest(t, http.MethodPost, path+"/shares", map[string]any{
		"shared_with_user_id": recipient.ID,
	}, auth), http.StatusCreated)

	doJSON(t, app, jsonRequest(t, http.MethodDelete, path, nil, auth), http.StatusOK)

	var shareCount int64
	if err := database.Model(&models.ReminderShare{}).
		Where("reminder_id = ?", reminderID).
		Count(&shareCount).Error; err != nil {
		t.Fatalf("count shares: %v", err)
	}
	if shareCount != 0 {
		t.Fatalf("expected shares cascade-deleted with the reminder, got %d", shareCount)
	}

	var pending int64
	if err := database.Model(&models.ScheduledNotification{}).
		Where("reminder_id = ? AND status = ?", reminderID, models.NotificationPending).
		Count(&pending).Error; err != nil {
		t.Fatalf("count pending notifications: %v", err)
	}
	if pending != 0 {
		t.Fatalf("expected pending notifications cancelled on delete, got %d", pending)
	}
}

func TestCalendarMonthBucketsByDueDate(t *testing.T) {
	t.Parallel()

	app, database, handler := newTestApp(t)
	user := createTestUser(t, database, "calendar@example.com", "StrongPass1")
	auth := bearerHeaderForUser(t, handler, user)

	for _, raw := range []string{"2026-09-10T09:00:00Z", "2026-09-10T18:00:00Z", "2026-09-21T08:00:00Z"} {
		doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reminders", map[string]any{
			"title":  "Entry " + raw,
			"due_at": raw,
		}, auth), http.StatusCreated)
	}

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/reminders/calendar/2026-09", nil, auth), http.StatusOK)
	days := body["days"].([]any)
	if len(days) != 2 {
		t.Fatalf("expected two calendar days, got %d", len(days))
	}

	first := days[0].(map[string]any)
	if first["date"] != "2026-09-10" {
		t.Fatalf("expected first bucket 2026-09-10, got %v", first["date"])
	}
	if len(first["reminders"].([]any)) != 2 {
		t.Fatalf("expected two reminders on 2026-09-10, got %d", len(first["reminders"].([]any)))
	}
}
