package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nominapp/nominacli/internal/flagx"
	"github.com/nominapp/nominacli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDBPath  string         `json:"session_db_path"`
	ExportDir      string         `json:"export_dir"`
	Locale         string         `json:"locale"`
	OrgName        string         `json:"org_name"`
}

func jsonPathFromArgs() string {
	return flagx.JsonConfigFlags()
}

// parseJSON overlays Config with values from the JSON file at path. An empty
// path means no JSON layer. Only fields present in the file override; omitted
// fields keep their earlier-layer values. Panics on read or unmarshal errors
// (caller should recover if desired).
func parseJSON(cfg *Config, path string) {
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if jc.Locale != "" {
		cfg.Locale = jc.Locale
	}
	if jc.OrgName != "" {
		cfg.OrgName = jc.OrgName
	}
}
