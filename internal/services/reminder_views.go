package services

import (
	"time"

	"github.com/terraincognita07/nudge/internal/models"
)

// HomePartition mirrors the home screen grouping: completed reminders in
// their own bucket, the rest split into upcoming and overdue by due time.
type HomePartition struct {
	Upcoming  []models.Reminder `json:"upcoming"`
	Overdue   []models.Reminder `json:"overdue"`
	Completed []models.Reminder `json:"completed"`
}

type HomeCounts struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Overdue   int `json:"overdue"`
	Completed int `json:"completed"`
}

func PartitionReminders(reminders []models.Reminder, now time.Time) HomePartition {
	partition := HomePartition{
		Upcoming:  make([]models.Reminder, 0, len(reminders)),
		Overdue:   make([]models.Reminder, 0),
		Completed: make([]models.Reminder, 0),
	}

	for _, reminder := range reminders {
		switch {
		case reminder.IsCompleted:
			partition.Completed = append(partition.Completed, reminder)
		case reminder.DueAt.Before(now):
			partition.Overdue = append(partition.Overdue, reminder)
		default:
			partition.Upcoming = append(partition.Upcoming, reminder)
		}
	}
	return partition
}

func (partition HomePartition) Counts() HomeCounts {
	return HomeCounts{
		Total:     len(partition.Upcoming) + len(partition.Overdue) + len(partition.Completed),
		Upcoming:  len(partition.Upcoming),
		Overdue:   len(partition.Overdue),
		Completed: len(partition.Completed),
	}
}

// CalendarDay buckets a month's reminders by due date for the calendar view.
type CalendarDay struct {
	Date      string            `json:"date"`
	Reminders []models.Reminder `json:"reminders"`
}

func (service *ReminderService) CalendarMonth(ownerID uint, year int, month time.Month, location *time.Location) ([]CalendarDay, error) {
	if location == nil {
		location = time.UTC
	}
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, location)
	monthEnd := monthStart.AddDate(0, 1, 0)

	reminders, err := service.reminders.ListByOwnerRange(ownerID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	days := make([]CalendarDay, 0)
	byDate := make(map[string]int)
	for _, reminder := range reminders {
		date := reminder.DueAt.In(location).Format("2006-01-02")
		index, exists := byDate[date]
		if !exists {
			days = append(days, CalendarDay{Date: date, Reminders: make([]models.Reminder, 0, 1)})
			index = len(days) - 1
			byDate[date] = index
		}
		days[index].Reminders = append(days[index].Reminders, reminder)
	}
	return days, nil
}
