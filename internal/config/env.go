package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first; a missing file is not an error. Real
// environment variables win over .env values (godotenv never overrides).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("NOMINA_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("NOMINA_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("NOMINA_DB_PATH"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("NOMINA_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("NOMINA_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("NOMINA_ORG"); v != "" {
		cfg.OrgName = v
	}
}
