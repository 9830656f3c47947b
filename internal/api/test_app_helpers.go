package api

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nudge/internal/db"
	"github.com/terraincognita07/nudge/internal/services"
	"github.com/terraincognita07/nudge/internal/storage"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *Handler) {
	t.Helper()

	workDir := t.TempDir()
	database, err := db.OpenSQLite(filepath.Join(workDir, "nudge-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	mediaStore, err := storage.NewMediaStore(filepath.Join(workDir, "media"), "http://localhost:8080")
	if err != nil {
		t.Fatalf("init media store: %v", err)
	}

	repositories := db.NewRepositories(database)
	scheduler := services.NewScheduler(
		repositories.Notifications,
		repositories.DeviceTokens,
		repositories.Reminders,
		services.SchedulerOptions{PushEnabled: false, Location: time.UTC},
	)

	handler := NewHandler(database, "test-secret-key", time.UTC, false, mediaStore, scheduler)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, handler
}
