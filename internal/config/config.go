package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Media     MediaConfig     `koanf:"media"`
	Push      PushConfig      `koanf:"push"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
}

type ServerConfig struct {
	Port          string `koanf:"port"`
	Timezone      string `koanf:"timezone"`
	SecretKey     string `koanf:"secret_key"`
	PublicBaseURL string `koanf:"public_base_url"`
	CookieSecure  bool   `koanf:"cookie_secure"`
}

type DatabaseConfig struct {
	Path string `koanf:"path"`
}

type MediaConfig struct {
	Dir string `koanf:"dir"`
}

type PushConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Endpoint string `koanf:"endpoint"`
	Timeout  int    `koanf:"timeout"`
}

type SchedulerConfig struct {
	IntervalSeconds int `koanf:"interval_seconds"`
}

// Load merges defaults, an optional YAML file and NUDGE_* environment
// overrides, in that order. NUDGE_SERVER_SECRET_KEY maps to
// server.secret_key and so on.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider("NUDGE_", ".", func(key string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(key, "NUDGE_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate enforces the values the service cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.SecretKey) == "" {
		return errors.New("server secret key is required (set NUDGE_SERVER_SECRET_KEY)")
	}
	if strings.TrimSpace(c.Server.PublicBaseURL) == "" {
		return errors.New("public base URL is required (set NUDGE_SERVER_PUBLIC_BASE_URL)")
	}
	if c.Scheduler.IntervalSeconds <= 0 {
		return errors.New("scheduler interval must be positive")
	}
	if c.Push.Timeout <= 0 {
		return errors.New("push timeout must be positive")
	}
	return nil
}
