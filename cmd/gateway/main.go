package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ticketdesk/config"
	"ticketdesk/internal/gateway"
	"ticketdesk/internal/httpserver"
	"ticketdesk/internal/middleware"
	"ticketdesk/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting API gateway...")

	handler, err := gateway.New(logger, cfg.Gateway)
	if err != nil {
		logger.Errorf(ctx, "Failed to build routing table: %v", err)
		return
	}

	srv, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		Mode:        cfg.Server.Mode,
		ServiceName: "api-gateway",
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	srv.Use(middleware.Recovery(logger))
	srv.Use(middleware.CORS())
	handler.RegisterRoutes(srv.Engine())

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
	}
}
