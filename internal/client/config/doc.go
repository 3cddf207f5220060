// Package config loads runtime configuration for the review CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. REVIEW_* environment variables (read with cleanenv).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the REST API (default http://127.0.0.1:8080/api/v1)
//	-d string   local SQLite database file
//	-i int      online status check interval (seconds)
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds. Every key is optional:
//
//	{
//	  "server_url": "https://reviews.example.kz/api/v1",
//	  "database_path": "/var/lib/review/cli.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "rate_limit": 10,
//	  "rate_burst": 5,
//	  "log_level": "info"
//	}
package config
