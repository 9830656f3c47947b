package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Server.Timezone != "UTC" {
		t.Fatalf("expected default timezone UTC, got %q", cfg.Server.Timezone)
	}
	if cfg.Scheduler.IntervalSeconds != 30 {
		t.Fatalf("expected default interval 30, got %d", cfg.Scheduler.IntervalSeconds)
	}
	if !cfg.Push.Enabled {
		t.Fatal("expected push enabled by default")
	}
}

func TestLoadYAMLFileOverridesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nudge.yaml")
	contents := "server:\n  port: \"9090\"\n  timezone: Europe/Berlin\nscheduler:\n  interval_seconds: 5\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected file override for port, got %q", cfg.Server.Port)
	}
	if cfg.Server.Timezone != "Europe/Berlin" {
		t.Fatalf("expected file override for timezone, got %q", cfg.Server.Timezone)
	}
	if cfg.Scheduler.IntervalSeconds != 5 {
		t.Fatalf("expected file override for interval, got %d", cfg.Scheduler.IntervalSeconds)
	}
	if cfg.Database.Path != filepath.Join("data", "nudge.db") {
		t.Fatalf("expected untouched defaults preserved, got %q", cfg.Database.Path)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("NUDGE_SERVER_SECRET_KEY", "from-env")
	t.Setenv("NUDGE_SERVER_PORT", "7070")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.SecretKey != "from-env" {
		t.Fatalf("expected env secret key, got %q", cfg.Server.SecretKey)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("expected env port override, got %q", cfg.Server.Port)
	}
}

func TestValidateRequiresSecretKeyAndBaseURL(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure without a secret key")
	}

	cfg.Server.SecretKey = "secret"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure without a public base URL")
	}

	cfg.Server.PublicBaseURL = "http://localhost:8080"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
