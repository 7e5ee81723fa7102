package main

import (
	"os"

	"github.com/SscSPs/smart_pocket/cmd/sp_backend/cmd"
)

// @title Smart Pocket Backend API
// @version 1.0
// @description Receipt parsing and ledger submission for Smart Pocket.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
