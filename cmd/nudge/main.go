package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/nudge/internal/api"
	"github.com/terraincognita07/nudge/internal/config"
	"github.com/terraincognita07/nudge/internal/db"
	"github.com/terraincognita07/nudge/internal/services"
	"github.com/terraincognita07/nudge/internal/storage"
)

func main() {
	cfg, err := config.Load(os.Getenv("NUDGE_CONFIG"))
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	location := mustLoadLocation(cfg.Server.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	mediaStore, err := storage.NewMediaStore(cfg.Media.Dir, cfg.Server.PublicBaseURL)
	if err != nil {
		log.Fatalf("media store init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	scheduler := services.NewScheduler(
		repositories.Notifications,
		repositories.DeviceTokens,
		repositories.Reminders,
		services.SchedulerOptions{
			PushEnabled:  cfg.Push.Enabled,
			PushEndpoint: cfg.Push.Endpoint,
			PushTimeout:  time.Duration(cfg.Push.Timeout) * time.Second,
			Interval:     time.Duration(cfg.Scheduler.IntervalSeconds) * time.Second,
			Location:     location,
		},
	)

	handler := api.NewHandler(database, cfg.Server.SecretKey, location, cfg.Server.CookieSecure, mediaStore, scheduler)

	app := fiber.New(fiber.Config{
		AppName:               "Nudge",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	app.Static("/media", mediaStore.Root())
	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	scheduler.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Nudge listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Server.Port, cfg.Database.Path, location.String())
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid timezone %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
