package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the review CLI.
//
// Fields:
//   - ServerURL: base URL of the REST API, including the /api/v1 prefix.
//   - DatabasePath: SQLite file holding the token and the catalogue cache.
//   - RequestTimeout: upper bound of a single backend request.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RateLimit, RateBurst: outbound requests per second and burst size;
//     RateLimit <= 0 disables limiting.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL           string
	DatabasePath        string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	RateLimit           float64
	RateBurst           int
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080/api/v1"
	c.DatabasePath = "review-universities.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.RateLimit = 10
	c.RateBurst = 5
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from os.Args and the environment. See Load.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then the JSON file named by -c/-config, then
// REVIEW_* environment variables, then command-line flags. Later sources
// take precedence. Invalid input panics.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
