package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	// LLM completion service
	OpenAIAPIKey         string
	OpenAIBaseURL        string
	OpenAIModel          string
	LLMRequestsPerMinute int

	// Ledger (actual-http-api)
	ActualRestBaseURL string
	ActualRestAPIKey  string
	BudgetSyncID      string

	// Receipt archive root
	DataDir string

	// Outbound HTTP behaviour shared by ledger and LLM clients
	HTTPMaxRetries     int
	HTTPRetryBaseDelay time.Duration
	HTTPRequestTimeout time.Duration

	JWTSecret          string
	RateLimit          string // ulule formatted rate, e.g. "20-M"
	CurrencySymbol     string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("LLM_REQUESTS_PER_MINUTE", 30)
	v.SetDefault("ACTUAL_REST_API_URL", "")
	v.SetDefault("ACTUAL_REST_API_KEY", "")
	v.SetDefault("BUDGET_SYNC_ID", "")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("HTTP_MAX_RETRIES", 3)
	v.SetDefault("HTTP_RETRY_BASE_DELAY", "500ms")
	v.SetDefault("HTTP_REQUEST_TIMEOUT", "60s")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT", "20-M")
	v.SetDefault("CURRENCY_SYMBOL", "₱")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()

	cfg := &Config{
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		OpenAIAPIKey:         v.GetString("OPENAI_API_KEY"),
		OpenAIBaseURL:        v.GetString("OPENAI_BASE_URL"),
		OpenAIModel:          v.GetString("OPENAI_MODEL"),
		LLMRequestsPerMinute: v.GetInt("LLM_REQUESTS_PER_MINUTE"),
		ActualRestBaseURL:    v.GetString("ACTUAL_REST_API_URL"),
		ActualRestAPIKey:     v.GetString("ACTUAL_REST_API_KEY"),
		BudgetSyncID:         v.GetString("BUDGET_SYNC_ID"),
		DataDir:              v.GetString("DATA_DIR"),
		HTTPMaxRetries:       v.GetInt("HTTP_MAX_RETRIES"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		CurrencySymbol:       v.GetString("CURRENCY_SYMBOL"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	retryBaseStr := v.GetString("HTTP_RETRY_BASE_DELAY")
	retryBase, err := time.ParseDuration(retryBaseStr)
	if err != nil || retryBase < 0 {
		retryBase = 500 * time.Millisecond
		log.Printf("Warning: Invalid value for HTTP_RETRY_BASE_DELAY ('%s'). Defaulting to %s.\n", retryBaseStr, retryBase)
	}
	cfg.HTTPRetryBaseDelay = retryBase

	timeoutStr := v.GetString("HTTP_REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 60 * time.Second
		log.Printf("Warning: Invalid value for HTTP_REQUEST_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.HTTPRequestTimeout = timeout

	if cfg.HTTPMaxRetries < 0 {
		log.Printf("Warning: HTTP_MAX_RETRIES is negative (%d). Disabling retries.\n", cfg.HTTPMaxRetries)
		cfg.HTTPMaxRetries = 0
	}
	if cfg.LLMRequestsPerMinute <= 0 {
		cfg.LLMRequestsPerMinute = 30
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Bearer token checks are disabled.")
	}

	return cfg, nil
}

// Validate reports every required setting that is missing.
func (c *Config) Validate() error {
	var errs []error
	required := map[string]string{
		"OPENAI_API_KEY":      c.OpenAIAPIKey,
		"ACTUAL_REST_API_URL": c.ActualRestBaseURL,
		"ACTUAL_REST_API_KEY": c.ActualRestAPIKey,
		"BUDGET_SYNC_ID":      c.BudgetSyncID,
		"DATA_DIR":            c.DataDir,
	}
	for _, key := range []string{"OPENAI_API_KEY", "ACTUAL_REST_API_URL", "ACTUAL_REST_API_KEY", "BUDGET_SYNC_ID", "DATA_DIR"} {
		if strings.TrimSpace(required[key]) == "" {
			errs = append(errs, fmt.Errorf("%s is not set or is empty", key))
		}
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
