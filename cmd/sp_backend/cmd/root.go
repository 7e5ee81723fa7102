// Package cmd provides the sp_backend commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/smart_pocket/internal/adapters/actualbudget"
	"github.com/SscSPs/smart_pocket/internal/adapters/archive"
	"github.com/SscSPs/smart_pocket/internal/adapters/httpapi"
	"github.com/SscSPs/smart_pocket/internal/adapters/openai"
	portsrepo "github.com/SscSPs/smart_pocket/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/smart_pocket/internal/core/ports/services"
	"github.com/SscSPs/smart_pocket/internal/core/services"
	"github.com/SscSPs/smart_pocket/internal/platform/config"
	"github.com/SscSPs/smart_pocket/pkg/logging"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "sp_backend",
	Short: "Smart Pocket receipt backend",
	Long: `sp_backend parses receipt text with an LLM, matches it against the
budget's payees, accounts and categories, and writes the reviewed result
to the ledger as one transaction or a split.

Example:
  sp_backend serve
  sp_backend parse ./receipt.txt`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(parseCmd)
}

// app bundles what every command needs once configuration is loaded.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	services *portssvc.ServiceContainer
}

func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger := logging.New(cfg.IsProduction, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", slog.String("error", err.Error()))
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	httpCfg := httpapi.Config{
		Timeout:        cfg.HTTPRequestTimeout,
		MaxRetries:     cfg.HTTPMaxRetries,
		RetryBaseDelay: cfg.HTTPRetryBaseDelay,
	}

	ledgerClient := actualbudget.NewClient(cfg.ActualRestBaseURL, cfg.ActualRestAPIKey, httpCfg)
	repos := portsrepo.RepositoryProvider{
		LedgerRepo:  actualbudget.NewLedgerRepository(ledgerClient, cfg.BudgetSyncID),
		ArchiveRepo: archive.NewFileArchive(cfg.DataDir),
	}

	extractor, err := openai.NewExtractor(openai.Config{
		APIKey:            cfg.OpenAIAPIKey,
		BaseURL:           cfg.OpenAIBaseURL,
		Model:             cfg.OpenAIModel,
		RequestsPerMinute: cfg.LLMRequestsPerMinute,
		HTTP:              httpCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	logger.Info("Configuration loaded",
		slog.String("ledger_url", cfg.ActualRestBaseURL),
		slog.String("model", cfg.OpenAIModel),
		slog.String("data_dir", cfg.DataDir))

	return &app{
		cfg:      cfg,
		logger:   logger,
		services: services.NewServiceContainer(cfg, repos, extractor),
	}, nil
}

func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
