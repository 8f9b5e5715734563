// Package config assembles runtime settings for the Nomina CLI from four
// layers, each overriding the previous one: built-in defaults, environment
// variables (with .env support), an optional JSON file, and command-line
// flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Nomina CLI.
//
// Fields:
//   - APIBaseURL: base URL of the Nomina backend REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: path of the sqlite file holding the cached session.
//   - ExportDir: directory where report and voucher files are written.
//   - Locale: BCP 47 tag used for money formatting.
//   - OrgName: organization name printed in document headers.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionDBPath  string
	ExportDir      string
	Locale         string
	OrgName        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.SessionDBPath = "nomina_session.db"
	c.ExportDir = "exportes"
	c.Locale = "es"
	c.OrgName = "Nomina"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), JSON (if a -c/-config
// path is given) and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg, jsonPathFromArgs())
	parseFlags(cfg, os.Args[1:])
	return cfg
}
