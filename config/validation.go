package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that required settings are present for the current
// environment. Secrets are only mandatory outside development and test, so
// local runs and the test suite work without a full secret set.
func ValidateConfig(cfg *Config) error {
	var missing []string

	if cfg.ServerPort == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if IsProduction() || IsCI() {
		if cfg.JWTSecret == "" {
			missing = append(missing, "JWT_SECRET")
		}
		if cfg.DBPassword == "" {
			missing = append(missing, "DB_PASSWORD")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
