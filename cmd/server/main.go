package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/tatiadventure/household-server/internal/api"
	"github.com/tatiadventure/household-server/internal/config"
	"github.com/tatiadventure/household-server/internal/repository"
	"github.com/tatiadventure/household-server/internal/service"
	"github.com/tatiadventure/household-server/internal/utils"
)

func main() {
	utils.SetupLogger()

	// Load configuration
	cfg := config.LoadConfig()

	// Set up database connection and bootstrap the schema
	db, err := config.SetupDatabase(cfg)
	if err != nil {
		slog.Error("failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Create repository
	repo := repository.NewSQLRepository(db)

	// Create service
	svc := service.NewDefaultService(repo, cfg.Auth.SessionSecret)

	// Create handler and router
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	// Start server
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("starting server", "addr", serverAddr, "db_driver", cfg.Database.Driver)
	if err := http.ListenAndServe(serverAddr, router); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
