package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	cfg := defaults()
	parseFlags(&cfg, []string{"-a", "http://h/api/v1", "-d=/tmp/x.db", "-t", "30", "-l", "warn", "-config", "ignored.json"})

	assert.Equal(t, "http://h/api/v1", cfg.ServerURL)
	assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func Test_parseFlags_KeepsSubSecondValuesWhenFlagAbsent(t *testing.T) {
	cfg := defaults()
	cfg.RequestTimeout = 1500 * time.Millisecond
	cfg.OnlineCheckInterval = 250 * time.Millisecond

	parseFlags(&cfg, nil)

	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.OnlineCheckInterval)
}

func TestEnvUsage_ListsVariables(t *testing.T) {
	u := EnvUsage()
	assert.Contains(t, u, "REVIEW_SERVER_URL")
	assert.Contains(t, u, "REVIEW_LOG_LEVEL")
}
