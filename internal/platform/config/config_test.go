package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HTTP_RETRY_BASE_DELAY", "")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.HTTPRetryBaseDelay)
	assert.Equal(t, 60*time.Second, cfg.HTTPRequestTimeout)
	assert.Equal(t, "20-M", cfg.RateLimit)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ACTUAL_REST_API_URL", "http://actual:5007")
	t.Setenv("ACTUAL_REST_API_KEY", "key")
	t.Setenv("BUDGET_SYNC_ID", "budget-1")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("HTTP_MAX_RETRIES", "5")
	t.Setenv("HTTP_RETRY_BASE_DELAY", "250ms")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "10s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("CURRENCY_SYMBOL", "$")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://actual:5007", cfg.ActualRestBaseURL)
	assert.Equal(t, "budget-1", cfg.BudgetSyncID)
	assert.Equal(t, 5, cfg.HTTPMaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTPRetryBaseDelay)
	assert.Equal(t, 10*time.Second, cfg.HTTPRequestTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("HTTP_RETRY_BASE_DELAY", "soon")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "-1s")
	t.Setenv("HTTP_MAX_RETRIES", "-2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.HTTPRetryBaseDelay)
	assert.Equal(t, 60*time.Second, cfg.HTTPRequestTimeout)
	assert.Equal(t, 0, cfg.HTTPMaxRetries)
}

func TestValidate_ReportsEveryMissingSetting(t *testing.T) {
	cfg := &Config{DataDir: "./data"}

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"OPENAI_API_KEY", "ACTUAL_REST_API_URL", "ACTUAL_REST_API_KEY", "BUDGET_SYNC_ID"} {
		assert.Contains(t, err.Error(), key)
	}
	assert.NotContains(t, err.Error(), "DATA_DIR")
}
