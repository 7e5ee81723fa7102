package cmd

import (
	"log/slog"

	"github.com/SscSPs/smart_pocket/internal/handlers"
	"github.com/SscSPs/smart_pocket/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	a, err := bootstrap()
	exitOnError(err, "failed to start")
	logger := a.logger

	exitOnError(handlers.RegisterValidators(), "failed to register validators")

	rateLimiter, err := middleware.NewMemoryLimiter(a.cfg.RateLimit)
	exitOnError(err, "invalid RATE_LIMIT")

	if a.cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	exitOnError(err, "failed to set trusted proxies")

	handlers.RegisterRoutes(r, a.cfg, a.services, rateLimiter)

	logger.Info("Server starting", slog.String("port", a.cfg.Port))
	if err := r.Run(":" + a.cfg.Port); err != nil {
		exitOnError(err, "server failed to run")
	}
}
