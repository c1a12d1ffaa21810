package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/MAksum123456/fly-port-api/docs"
	"github.com/MAksum123456/fly-port-api/internal/app"
	"github.com/MAksum123456/fly-port-api/internal/config"
)

// @title Fly Port API
// @version 1.0
// @description Airport service backend: reference data, flight schedule, and seat booking.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	// The level var lets the logger exist before the config that tunes it.
	lvl := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	lvl.Set(cfg.LogLevel)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
		os.Exit(1)
	}
}
