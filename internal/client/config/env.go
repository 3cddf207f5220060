package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig mirrors Config for cleanenv. Variables that are not set leave
// the corresponding field untouched.
type envConfig struct {
	ServerURL           string        `env:"REVIEW_SERVER_URL" env-description:"base URL of the REST API"`
	DatabasePath        string        `env:"REVIEW_DATABASE_PATH" env-description:"SQLite database file"`
	RequestTimeout      time.Duration `env:"REVIEW_REQUEST_TIMEOUT" env-description:"single request timeout, e.g. 10s"`
	OnlineCheckInterval time.Duration `env:"REVIEW_ONLINE_CHECK_INTERVAL" env-description:"server reachability probe interval"`
	RateLimit           float64       `env:"REVIEW_RATE_LIMIT" env-description:"outbound requests per second, 0 disables"`
	RateBurst           int           `env:"REVIEW_RATE_BURST" env-description:"outbound burst size"`
	LogLevel            string        `env:"REVIEW_LOG_LEVEL" env-description:"debug, info, warn or error"`
}

func parseEnv(cfg *Config) {
	ec := envConfig{
		ServerURL:           cfg.ServerURL,
		DatabasePath:        cfg.DatabasePath,
		RequestTimeout:      cfg.RequestTimeout,
		OnlineCheckInterval: cfg.OnlineCheckInterval,
		RateLimit:           cfg.RateLimit,
		RateBurst:           cfg.RateBurst,
		LogLevel:            cfg.LogLevel,
	}

	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	cfg.ServerURL = ec.ServerURL
	cfg.DatabasePath = ec.DatabasePath
	cfg.RequestTimeout = ec.RequestTimeout
	cfg.OnlineCheckInterval = ec.OnlineCheckInterval
	cfg.RateLimit = ec.RateLimit
	cfg.RateBurst = ec.RateBurst
	cfg.LogLevel = ec.LogLevel
}

// EnvUsage describes the supported environment variables.
func EnvUsage() string {
	var ec envConfig
	u, err := cleanenv.GetDescription(&ec, nil)
	if err != nil {
		return ""
	}
	return u
}
