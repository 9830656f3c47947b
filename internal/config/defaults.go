package config

import (
	"path/filepath"

	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"server": map[string]interface{}{
			"port":            "8080",
			"timezone":        "UTC",
			"secret_key":      "",
			"public_base_url": "",
			"cookie_secure":   false,
		},
		"database": map[string]interface{}{
			"path": filepath.Join("data", "nudge.db"),
		},
		"media": map[string]interface{}{
			"dir": filepath.Join("data", "media"),
		},
		"push": map[string]interface{}{
			"enabled":  true,
			"endpoint": "https://exp.host/--/api/v2/push/send",
			"timeout":  8,
		},
		"scheduler": map[string]interface{}{
			"interval_seconds": 30,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
