package config

import (
	"encoding/json"
	"os"

	"github.com/mathalama/review-universities/internal/flagx"
	"github.com/mathalama/review-universities/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell "absent" from "zero" so a partial file only overrides what it names.
type JsonConfig struct {
	ServerURL           *string         `json:"server_url"`
	DatabasePath        *string         `json:"database_path"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RateLimit           *float64        `json:"rate_limit"`
	RateBurst           *int            `json:"rate_burst"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file given by -c or -config. Without
// such a flag nothing happens; read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RateLimit != nil {
		cfg.RateLimit = *jc.RateLimit
	}
	if jc.RateBurst != nil {
		cfg.RateBurst = *jc.RateBurst
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
