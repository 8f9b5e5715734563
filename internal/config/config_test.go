package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg := defaults()

	require.Equal(t, "http://127.0.0.1:8080", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "es", cfg.Locale)
	require.NotEmpty(t, cfg.SessionDBPath)
	require.NotEmpty(t, cfg.ExportDir)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("NOMINA_API_URL", "https://api.acme.mx")
	t.Setenv("NOMINA_TIMEOUT", "30")
	t.Setenv("NOMINA_ORG", "Acme SA de CV")

	cfg := defaults()
	parseEnv(cfg)

	require.Equal(t, "https://api.acme.mx", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "Acme SA de CV", cfg.OrgName)
	require.Equal(t, "es", cfg.Locale, "unset variables keep defaults")
}

func TestParseEnv_BadTimeoutIgnored(t *testing.T) {
	t.Setenv("NOMINA_TIMEOUT", "treinta")

	cfg := defaults()
	parseEnv(cfg)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"),
		[]byte("NOMINA_EXPORT_DIR=/tmp/exportes\n"), 0o600))

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	cfg := defaults()
	parseEnv(cfg)
	require.Equal(t, "/tmp/exportes", cfg.ExportDir)
}

func TestParseJSON_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"api_base_url":"https://rrhh.acme.mx","request_timeout":"45s"}`), 0o600))

	cfg := defaults()
	parseJSON(cfg, path)

	require.Equal(t, "https://rrhh.acme.mx", cfg.APIBaseURL)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	require.Equal(t, "es", cfg.Locale, "omitted fields keep defaults")
}

func TestParseJSON_EmptyPathIsNoop(t *testing.T) {
	cfg := defaults()
	parseJSON(cfg, "")
	require.Equal(t, defaults(), cfg)
}

func TestParseJSON_PanicsOnBadFile(t *testing.T) {
	cfg := defaults()
	require.Panics(t, func() { parseJSON(cfg, "/does/not/exist.json") })
}

func TestParseFlags(t *testing.T) {
	cfg := defaults()
	parseFlags(cfg, []string{"-a", "https://api.acme.mx", "-t", "60", "-e", "descargas"})

	require.Equal(t, "https://api.acme.mx", cfg.APIBaseURL)
	require.Equal(t, 60*time.Second, cfg.RequestTimeout)
	require.Equal(t, "descargas", cfg.ExportDir)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	cfg := defaults()
	parseFlags(cfg, []string{"-z", "whatever", "-a", "https://api.acme.mx"})
	require.Equal(t, "https://api.acme.mx", cfg.APIBaseURL)
}
